package accommodation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("accommodation name cannot be empty")
	ErrNameTooLong      = errors.New("accommodation name is too long (max 255 characters)")
	ErrInvalidSlug      = errors.New("slug must be lowercase letters, digits, and hyphens")
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrNegativePrice    = errors.New("prices cannot be negative")
	ErrInvalidStayHours = errors.New("max stay hours cannot be negative")
)

const MaxNameLength = 255

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Type groups accommodations and decides the booking flow: overnight types
// (guest houses) bill from an arbitrary check-in instant, everything else
// books fixed day or night slots.
type Type struct {
	id        uuid.UUID
	name      string
	slug      string
	overnight bool
	createdAt time.Time
	updatedAt time.Time
}

func NewType(name, slug string, overnight bool) (*Type, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	return &Type{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		slug:      slug,
		overnight: overnight,
	}, nil
}

func ReconstructType(id uuid.UUID, name, slug string, overnight bool, createdAt, updatedAt time.Time) *Type {
	return &Type{
		id:        id,
		name:      name,
		slug:      slug,
		overnight: overnight,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Type) ID() uuid.UUID        { return t.id }
func (t *Type) Name() string         { return t.name }
func (t *Type) Slug() string         { return t.slug }
func (t *Type) Overnight() bool      { return t.overnight }
func (t *Type) CreatedAt() time.Time { return t.createdAt }
func (t *Type) UpdatedAt() time.Time { return t.updatedAt }

type Accommodation struct {
	id             uuid.UUID
	typeID         uuid.UUID
	name           string
	slug           string
	dayPrice       pricing.Money
	nightPrice     pricing.Money
	capacity       int
	extraPersonFee pricing.Money
	poolAccess     bool
	maxStayHours   int
	overnight      bool
	archived       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewAccommodation(
	typ *Type,
	name, slug string,
	dayPrice, nightPrice pricing.Money,
	capacity int,
	extraPersonFee pricing.Money,
	poolAccess bool,
	maxStayHours int,
) (*Accommodation, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if dayPrice.Centavos() < 0 || nightPrice.Centavos() < 0 || extraPersonFee.Centavos() < 0 {
		return nil, ErrNegativePrice
	}
	if maxStayHours < 0 {
		return nil, ErrInvalidStayHours
	}
	return &Accommodation{
		id:             uuid.New(),
		typeID:         typ.ID(),
		name:           strings.TrimSpace(name),
		slug:           slug,
		dayPrice:       dayPrice,
		nightPrice:     nightPrice,
		capacity:       capacity,
		extraPersonFee: extraPersonFee,
		poolAccess:     poolAccess,
		maxStayHours:   maxStayHours,
		overnight:      typ.Overnight(),
	}, nil
}

func ReconstructAccommodation(
	id, typeID uuid.UUID,
	name, slug string,
	dayPrice, nightPrice pricing.Money,
	capacity int,
	extraPersonFee pricing.Money,
	poolAccess bool,
	maxStayHours int,
	overnight, archived bool,
	createdAt, updatedAt time.Time,
) *Accommodation {
	return &Accommodation{
		id:             id,
		typeID:         typeID,
		name:           name,
		slug:           slug,
		dayPrice:       dayPrice,
		nightPrice:     nightPrice,
		capacity:       capacity,
		extraPersonFee: extraPersonFee,
		poolAccess:     poolAccess,
		maxStayHours:   maxStayHours,
		overnight:      overnight,
		archived:       archived,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// BasePrice selects the rental price for the booked slot. Overnight stays
// bill the night price.
func (a *Accommodation) BasePrice(mode booking.TourMode) pricing.Money {
	if a.overnight || mode == booking.ModeNight {
		return a.nightPrice
	}
	return a.dayPrice
}

// AllowsEntranceTotal caps pool entrants at capacity. Accommodations without
// pool access sell entrance tickets separately and are not capped here.
func (a *Accommodation) AllowsEntranceTotal(total int) bool {
	if !a.poolAccess {
		return true
	}
	return total <= a.capacity
}

func (a *Accommodation) Archive() {
	a.archived = true
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (a *Accommodation) ID() uuid.UUID                 { return a.id }
func (a *Accommodation) TypeID() uuid.UUID             { return a.typeID }
func (a *Accommodation) Name() string                  { return a.name }
func (a *Accommodation) Slug() string                  { return a.slug }
func (a *Accommodation) DayPrice() pricing.Money       { return a.dayPrice }
func (a *Accommodation) NightPrice() pricing.Money     { return a.nightPrice }
func (a *Accommodation) Capacity() int                 { return a.capacity }
func (a *Accommodation) ExtraPersonFee() pricing.Money { return a.extraPersonFee }
func (a *Accommodation) PoolAccess() bool              { return a.poolAccess }
func (a *Accommodation) MaxStayHours() int             { return a.maxStayHours }
func (a *Accommodation) Overnight() bool               { return a.overnight }
func (a *Accommodation) Archived() bool                { return a.archived }
func (a *Accommodation) CreatedAt() time.Time          { return a.createdAt }
func (a *Accommodation) UpdatedAt() time.Time          { return a.updatedAt }
