package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBlockedRangeRequest closes one accommodation, or the whole resort
// when no accommodation is given, for a period.
type CreateBlockedRangeRequest struct {
	AccommodationID *uuid.UUID `json:"accommodation_id,omitempty"`
	StartsAt        time.Time  `json:"starts_at" binding:"required"`
	EndsAt          time.Time  `json:"ends_at" binding:"required"`
	Reason          string     `json:"reason" binding:"required,max=255"`
}
