package commands

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/pricing"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/patch"
	"resort-booking/internal/usecase/queries"
)

var (
	ErrAccommodationNotFound     = errs.New("accommodation not found")
	ErrAccommodationTypeNotFound = errs.New("accommodation type not found")
	ErrSlugTaken                 = errs.New("slug is already in use")
)

type AccommodationCommands interface {
	CreateType(ctx context.Context, req reqdto.CreateAccommodationTypeRequest) (*queries.AccommodationTypeView, error)
	Create(ctx context.Context, req reqdto.CreateAccommodationRequest) (*queries.AccommodationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccommodationRequest) (*queries.AccommodationView, error)
	Archive(ctx context.Context, id uuid.UUID) error
}

type accommodationCommandsImpl struct {
	repo    AccommodationRepository
	queries queries.AccommodationQueries
	pool    *pgxpool.Pool
}

func NewAccommodationCommands(repo AccommodationRepository, q queries.AccommodationQueries, pool *pgxpool.Pool) AccommodationCommands {
	return &accommodationCommandsImpl{
		repo:    repo,
		queries: q,
		pool:    pool,
	}
}

func (c *accommodationCommandsImpl) CreateType(ctx context.Context, req reqdto.CreateAccommodationTypeRequest) (*queries.AccommodationTypeView, error) {
	typ, err := accommodation.NewType(req.Name, req.Slug, req.Overnight)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.CreateType(ctx, c.pool, typ); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return c.queries.GetTypeByID(ctx, typ.ID())
}

func (c *accommodationCommandsImpl) Create(ctx context.Context, req reqdto.CreateAccommodationRequest) (*queries.AccommodationView, error) {
	typ, err := c.repo.TypeByID(ctx, req.TypeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationTypeNotFound
		}
		return nil, err
	}

	acc, err := accommodation.NewAccommodation(
		typ,
		req.Name,
		req.Slug,
		pricing.NewMoney(req.DayPriceCentavos),
		pricing.NewMoney(req.NightPriceCentavos),
		req.Capacity,
		pricing.NewMoney(req.ExtraPersonFeeCentavos),
		req.PoolAccess,
		req.MaxStayHours,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := c.repo.Create(ctx, c.pool, acc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return c.queries.GetByID(ctx, acc.ID())
}

// Update rebuilds the entity through its constructor so patched fields pass
// the same validation as created ones.
func (c *accommodationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAccommodationRequest) (*queries.AccommodationView, error) {
	current, err := c.findDomain(ctx, id)
	if err != nil {
		return nil, err
	}

	typ, err := c.repo.TypeByID(ctx, current.TypeID())
	if err != nil {
		return nil, err
	}

	patched, err := accommodation.NewAccommodation(
		typ,
		patch.Coalesce(req.Name, current.Name()),
		patch.Coalesce(req.Slug, current.Slug()),
		pricing.NewMoney(patch.Coalesce(req.DayPriceCentavos, current.DayPrice().Centavos())),
		pricing.NewMoney(patch.Coalesce(req.NightPriceCentavos, current.NightPrice().Centavos())),
		patch.Coalesce(req.Capacity, current.Capacity()),
		pricing.NewMoney(patch.Coalesce(req.ExtraPersonFeeCentavos, current.ExtraPersonFee().Centavos())),
		patch.Coalesce(req.PoolAccess, current.PoolAccess()),
		patch.Coalesce(req.MaxStayHours, current.MaxStayHours()),
	)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	updated := accommodation.ReconstructAccommodation(
		current.ID(),
		current.TypeID(),
		patched.Name(),
		patched.Slug(),
		patched.DayPrice(),
		patched.NightPrice(),
		patched.Capacity(),
		patched.ExtraPersonFee(),
		patched.PoolAccess(),
		patched.MaxStayHours(),
		current.Overnight(),
		current.Archived(),
		current.CreatedAt(),
		current.UpdatedAt(),
	)

	if err := c.repo.Update(ctx, c.pool, updated); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return c.queries.GetByID(ctx, id)
}

func (c *accommodationCommandsImpl) Archive(ctx context.Context, id uuid.UUID) error {
	current, err := c.findDomain(ctx, id)
	if err != nil {
		return err
	}

	current.Archive()
	return c.repo.Update(ctx, c.pool, current)
}

func (c *accommodationCommandsImpl) findDomain(ctx context.Context, id uuid.UUID) (*accommodation.Accommodation, error) {
	acc, err := c.repo.DomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	return acc, nil
}
