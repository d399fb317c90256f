package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/pricing"
	"resort-booking/internal/domain/reservation"
	reqdto "resort-booking/internal/handler/dto/request"
	"resort-booking/internal/infra"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/queries"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationConflict     = errs.New("reservation conflict")
	ErrRateTableMissing        = errs.New("no rate table is configured")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID, staffOverride bool) (*queries.ReservationView, error)
	MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	Reschedule(ctx context.Context, id uuid.UUID, req reqdto.RescheduleReservationRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	accommodationRepo  AccommodationRepository
	blockedRepo        BlockedRangeRepository
	rateStore          queries.RateReadStore
	reservationFactory *reservation.Factory
	reservationQueries queries.ReservationQueries
	pool               *pgxpool.Pool
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	accommodationRepo AccommodationRepository,
	blockedRepo BlockedRangeRepository,
	rateStore queries.RateReadStore,
	reservationFactory *reservation.Factory,
	reservationQueries queries.ReservationQueries,
	pool *pgxpool.Pool,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		accommodationRepo:  accommodationRepo,
		blockedRepo:        blockedRepo,
		rateStore:          rateStore,
		reservationFactory: reservationFactory,
		reservationQueries: reservationQueries,
		pool:               pool,
		clock:              clk,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	acc, err := r.findAccommodation(ctx, req.AccommodationID)
	if err != nil {
		return nil, err
	}

	guest, err := reservation.NewGuest(req.GuestName, req.GuestEmail, req.GuestPhone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	input, err := r.buildQuoteInput(ctx, acc, req.StaySelection, nil)
	if err != nil {
		return nil, err
	}

	entity, err := r.reservationFactory.CreateReservation(guest, input, reservation.NewNote(req.Note))
	if err != nil {
		if errors.Is(err, reservation.ErrDateUnavailable) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return r.writeWithBlock(ctx, entity, func(ctx context.Context, tx db.DBTX) error {
		return r.reservationRepo.Create(ctx, tx, entity)
	})
}

func (r *reservationCommandsImpl) Confirm(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Confirm()
	}, false)
}

func (r *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.CheckIn()
	}, false)
}

// Cancel releases the reservation's hold on the calendar in the same
// transaction that flips the status.
func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, staffOverride bool) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.Cancel(r.clock.Now(), staffOverride)
	}, true)
}

func (r *reservationCommandsImpl) MarkNoShow(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	return r.transition(ctx, id, func(res *reservation.Reservation) error {
		return res.MarkNoShow(r.clock.Now())
	}, true)
}

// Reschedule re-resolves the stay against the current calendar, excluding the
// reservation's own blocked range so it does not collide with itself, then
// swaps the window and its block atomically.
func (r *reservationCommandsImpl) Reschedule(ctx context.Context, id uuid.UUID, req reqdto.RescheduleReservationRequest) (*queries.ReservationView, error) {
	entity, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	acc, err := r.findAccommodation(ctx, entity.AccommodationID())
	if err != nil {
		return nil, err
	}

	input, err := r.buildQuoteInput(ctx, acc, req.StaySelection, &id)
	if err != nil {
		return nil, err
	}

	quote, err := r.reservationFactory.Resolver().Resolve(input)
	if err != nil {
		if errors.Is(err, reservation.ErrDateUnavailable) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !quote.Window.Start().After(r.clock.Now()) {
		return nil, errs.Mark(reservation.ErrStartInPast, ErrDomainValidation)
	}

	if err := entity.Reschedule(quote); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return r.writeWithBlock(ctx, entity, func(ctx context.Context, tx db.DBTX) error {
		if err := r.blockedRepo.DeleteByReservationID(ctx, tx, entity.ID()); err != nil {
			return err
		}
		return r.reservationRepo.Update(ctx, tx, entity)
	})
}

func (r *reservationCommandsImpl) findAccommodation(ctx context.Context, id uuid.UUID) (*accommodation.Accommodation, error) {
	acc, err := r.accommodationRepo.DomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccommodationNotFound
		}
		return nil, err
	}
	if acc.Archived() {
		return nil, ErrAccommodationNotFound
	}
	return acc, nil
}

func (r *reservationCommandsImpl) findReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	entity, err := r.reservationRepo.DomainByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return entity, nil
}

func (r *reservationCommandsImpl) buildQuoteInput(
	ctx context.Context,
	acc *accommodation.Accommodation,
	sel reqdto.StaySelection,
	excludeReservationID *uuid.UUID,
) (reservation.QuoteInput, error) {
	rateView, err := r.rateStore.FindCurrent(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.QuoteInput{}, ErrRateTableMissing
		}
		return reservation.QuoteInput{}, err
	}

	counts, err := pricing.NewEntranceCounts(sel.AdultCount, sel.ChildCount, sel.PwdSeniorCount)
	if err != nil {
		return reservation.QuoteInput{}, errs.Mark(err, ErrDomainValidation)
	}

	input := reservation.QuoteInput{
		Accommodation: acc,
		ManualGuests:  sel.GuestCount,
		Entrance:      counts,
		Rates:         rateView.ToDomain(),
	}
	if sel.Date != nil {
		input.Date = *sel.Date
	}
	if sel.CheckIn != nil {
		input.CheckIn = *sel.CheckIn
	}
	if sel.TourMode != nil {
		mode, err := booking.NewTourMode(*sel.TourMode)
		if err != nil {
			return reservation.QuoteInput{}, errs.Mark(err, ErrDomainValidation)
		}
		input.Mode = mode
	}

	from := input.CheckIn
	if from.IsZero() {
		from = input.Date
	}
	if !from.IsZero() {
		ranges, err := r.blockedRepo.ActiveFrom(ctx, acc.ID(), from.AddDate(0, 0, -1), excludeReservationID)
		if err != nil {
			return reservation.QuoteInput{}, err
		}
		input.Blocked = ranges
	}

	return input, nil
}

// writeWithBlock persists the reservation mutation together with its calendar
// block. The exclusion constraint on blocked_ranges turns a lost race into a
// conflict instead of a double booking.
func (r *reservationCommandsImpl) writeWithBlock(
	ctx context.Context,
	entity *reservation.Reservation,
	write func(ctx context.Context, tx db.DBTX) error,
) (*queries.ReservationView, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := write(ctx, tx); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	blocked, err := blockFor(entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := r.blockedRepo.Create(ctx, tx, blocked); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return r.reservationQueries.GetByID(ctx, entity.ID())
}

// transition loads, mutates, and saves a reservation; releaseBlock also drops
// its calendar hold.
func (r *reservationCommandsImpl) transition(
	ctx context.Context,
	id uuid.UUID,
	mutate func(res *reservation.Reservation) error,
	releaseBlock bool,
) (*queries.ReservationView, error) {
	entity, err := r.findReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(entity); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if err := r.reservationRepo.Update(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if releaseBlock {
		if err := r.blockedRepo.DeleteByReservationID(ctx, tx, id); err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	return r.reservationQueries.GetByID(ctx, id)
}

// blockFor derives the calendar hold that mirrors the reservation's window.
func blockFor(entity *reservation.Reservation) (booking.BlockedRange, error) {
	accID := entity.AccommodationID()
	blocked, err := booking.NewBlockedRange(&accID, entity.Window().Start(), entity.Window().End(), "reserved")
	if err != nil {
		return booking.BlockedRange{}, err
	}
	resID := entity.ID()
	blocked.ReservationID = &resID
	return blocked, nil
}
