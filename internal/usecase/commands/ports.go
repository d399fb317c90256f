package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/domain/user"
	"resort-booking/internal/infra/db"
)

// Write-side repository ports. Reads resolve through the repository's own
// pool; writes take an explicit DBTX so callers control transaction scope.

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	DomainByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type AccommodationRepository interface {
	CreateType(ctx context.Context, tx db.DBTX, t *accommodation.Type) error
	Create(ctx context.Context, tx db.DBTX, acc *accommodation.Accommodation) error
	Update(ctx context.Context, tx db.DBTX, acc *accommodation.Accommodation) error
	DomainByID(ctx context.Context, id uuid.UUID) (*accommodation.Accommodation, error)
	TypeByID(ctx context.Context, id uuid.UUID) (*accommodation.Type, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	DomainByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type BlockedRangeRepository interface {
	Create(ctx context.Context, tx db.DBTX, r booking.BlockedRange) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DeleteByReservationID(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) error
	DomainByID(ctx context.Context, id uuid.UUID) (booking.BlockedRange, error)
	ActiveFrom(ctx context.Context, accommodationID uuid.UUID, from time.Time, excludeReservationID *uuid.UUID) ([]booking.BlockedRange, error)
}

type RateRepository interface {
	Insert(ctx context.Context, tx db.DBTX, rates RateSchedule) error
}

// RateSchedule is the write-side shape of one fee revision. Each update
// inserts a new row; history stays queryable.
type RateSchedule struct {
	AdultDayCentavos       int64
	AdultNightCentavos     int64
	ChildDayCentavos       int64
	ChildNightCentavos     int64
	PwdSeniorDayCentavos   int64
	PwdSeniorNightCentavos int64
	EffectiveFrom          time.Time
}
