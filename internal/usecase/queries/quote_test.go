//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/domain/accommodation"
	"resort-booking/internal/domain/booking"
	"resort-booking/internal/domain/reservation"
	"resort-booking/internal/infra"
	"resort-booking/internal/pkg/ptr"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteQueriesTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockAccommodations *queriesmock.MockAccommodationLoader
	mockBlocked        *queriesmock.MockBlockedRangeLoader
	mockRates          *queriesmock.MockRateReadStore
	quoteQueries       queries.QuoteQueries
}

func (s *QuoteQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAccommodations = queriesmock.NewMockAccommodationLoader(s.mockCtrl)
	s.mockBlocked = queriesmock.NewMockBlockedRangeLoader(s.mockCtrl)
	s.mockRates = queriesmock.NewMockRateReadStore(s.mockCtrl)

	resolver := reservation.NewResolver(booking.DefaultHours())
	s.quoteQueries = queries.NewQuoteQueries(s.mockAccommodations, s.mockBlocked, s.mockRates, resolver)
}

func (s *QuoteQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteQueriesSuite(t *testing.T) {
	suite.Run(t, new(QuoteQueriesTestSuite))
}

func (s *QuoteQueriesTestSuite) rateView() *queries.RateTableView {
	return &queries.RateTableView{
		ID:                     uuid.New(),
		AdultDayCentavos:       10000,
		AdultNightCentavos:     12000,
		ChildDayCentavos:       5000,
		ChildNightCentavos:     6000,
		PwdSeniorDayCentavos:   8000,
		PwdSeniorNightCentavos: 9600,
		EffectiveFrom:          time.Now().AddDate(0, 0, -1),
	}
}

func (s *QuoteQueriesTestSuite) buildAccommodation(b *builder.AccommodationBuilder) *accommodation.Accommodation {
	acc, err := b.BuildDomain()
	s.Require().NoError(err)
	return acc
}

func (s *QuoteQueriesTestSuite) dayTourRequest(acc *accommodation.Accommodation) queries.QuoteRequest {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	return queries.QuoteRequest{
		AccommodationID: acc.ID(),
		Date:            &date,
		TourMode:        ptr.To("day"),
		GuestCount:      ptr.To(4),
		AdultCount:      2,
		ChildCount:      2,
	}
}

func (s *QuoteQueriesTestSuite) TestResolveDayTour() {
	acc := s.buildAccommodation(builder.NewAccommodationBuilder())
	req := s.dayTourRequest(acc)

	s.Run("prices the slot when nothing overlaps", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.True(view.Available)
		s.Require().NotNil(view.StartsAt)
		s.Require().NotNil(view.EndsAt)
		s.Equal(7, view.StartsAt.Hour())
		s.Equal(17, view.EndsAt.Hour())
		s.Require().NotNil(view.TourMode)
		s.Equal("day", *view.TourMode)
		s.Equal(int32(4), view.GuestCount)
		s.False(view.GuestCountDerived)
		s.Equal(int64(150000), view.AccommodationCentavos)
		s.Equal(int64(20000), view.AdultAmountCentavos)
		s.Equal(int64(10000), view.ChildAmountCentavos)
		s.Equal(int64(30000), view.EntranceTotalCentavos)
		s.Equal(int64(0), view.ExtraPersonFeeCentavos)
		s.Equal(int64(180000), view.TotalCentavos)
		s.Equal(int64(75000), view.MinimumPayableCentavos)
	})

	s.Run("fetches conflicts from the day before the tour date", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().
			ActiveFrom(gomock.Any(), acc.ID(), req.Date.AddDate(0, 0, -1), nil).
			Return(nil, nil)

		_, err := s.quoteQueries.Resolve(context.Background(), req)
		s.Require().NoError(err)
	})

	s.Run("an overlapping range makes the quote unavailable, not an error", func() {
		blocked, err := booking.NewBlockedRange(ptr.To(acc.ID()),
			req.Date.Add(6*time.Hour), req.Date.Add(12*time.Hour), "maintenance")
		s.Require().NoError(err)

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return([]booking.BlockedRange{blocked}, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.False(view.Available)
		s.NotEmpty(view.Reason)
		s.Zero(view.TotalCentavos)
	})

	s.Run("a range touching the slot start does not conflict", func() {
		// Half-open intervals: a block ending 07:00 coexists with the 07:00 day slot.
		blocked, err := booking.NewBlockedRange(ptr.To(acc.ID()),
			req.Date.Add(-12*time.Hour), req.Date.Add(7*time.Hour), "night tour")
		s.Require().NoError(err)

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return([]booking.BlockedRange{blocked}, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.True(view.Available)
	})

	s.Run("a resort-wide block applies to every accommodation", func() {
		blocked, err := booking.NewBlockedRange(nil,
			req.Date.Add(6*time.Hour), req.Date.Add(12*time.Hour), "typhoon closure")
		s.Require().NoError(err)

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return([]booking.BlockedRange{blocked}, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.False(view.Available)
	})

	s.Run("night mode bills the night base price and night entrance rates", func() {
		nightReq := req
		nightReq.TourMode = ptr.To("night")

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), nightReq)

		s.Require().NoError(err)
		s.True(view.Available)
		s.Equal(int64(180000), view.AccommodationCentavos)
		s.Equal(int64(24000), view.AdultAmountCentavos)
		s.Equal(int64(12000), view.ChildAmountCentavos)
		s.Equal(int64(216000), view.TotalCentavos)
		s.Equal(int64(90000), view.MinimumPayableCentavos)
	})
}

func (s *QuoteQueriesTestSuite) TestResolveOvernight() {
	acc := s.buildAccommodation(builder.NewAccommodationBuilder().WithOvernight())
	checkIn := time.Date(2026, 9, 14, 20, 0, 0, 0, time.UTC)
	req := queries.QuoteRequest{
		AccommodationID: acc.ID(),
		CheckIn:         &checkIn,
		GuestCount:      ptr.To(2),
		AdultCount:      2,
	}

	s.Run("bills from check-in through the max stay", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), checkIn.AddDate(0, 0, -1), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.True(view.Available)
		s.Nil(view.TourMode)
		s.Equal(checkIn, *view.StartsAt)
		s.Equal(checkIn.Add(10*time.Hour), *view.EndsAt)
		s.Equal(int64(180000), view.AccommodationCentavos)
		s.Equal(int64(24000), view.AdultAmountCentavos)
		s.Equal(int64(204000), view.TotalCentavos)
	})

	s.Run("a missing check-in is an unavailable quote", func() {
		incomplete := req
		incomplete.CheckIn = nil

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)

		view, err := s.quoteQueries.Resolve(context.Background(), incomplete)

		s.Require().NoError(err)
		s.False(view.Available)
		s.Equal(reservation.ErrMissingCheckIn.Error(), view.Reason)
	})
}

func (s *QuoteQueriesTestSuite) TestResolveGuestCounts() {
	s.Run("pool accommodations derive the headcount from tickets", func() {
		acc := s.buildAccommodation(builder.NewAccommodationBuilder().WithPoolAccess().WithCapacity(10))
		req := s.dayTourRequest(acc)
		req.GuestCount = nil
		req.AdultCount = 3
		req.ChildCount = 2

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.True(view.Available)
		s.Equal(int32(5), view.GuestCount)
		s.True(view.GuestCountDerived)
	})

	s.Run("tickets beyond pool capacity make the quote unavailable", func() {
		acc := s.buildAccommodation(builder.NewAccommodationBuilder().WithPoolAccess().WithCapacity(4))
		req := s.dayTourRequest(acc)
		req.AdultCount = 5

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.False(view.Available)
		s.Equal(reservation.ErrCapacityExceeded.Error(), view.Reason)
	})

	s.Run("non-pool accommodations require a manual guest count", func() {
		acc := s.buildAccommodation(builder.NewAccommodationBuilder())
		req := s.dayTourRequest(acc)
		req.GuestCount = nil

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.False(view.Available)
		s.Equal(reservation.ErrGuestCountRequired.Error(), view.Reason)
	})

	s.Run("guests beyond capacity pay the extra-person fee", func() {
		acc := s.buildAccommodation(builder.NewAccommodationBuilder())
		req := s.dayTourRequest(acc)
		req.GuestCount = ptr.To(6)

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), req)

		s.Require().NoError(err)
		s.True(view.Available)
		s.Equal(int64(40000), view.ExtraPersonFeeCentavos)
		s.Equal(int64(220000), view.TotalCentavos)
	})
}

func (s *QuoteQueriesTestSuite) TestResolveErrors() {
	acc := s.buildAccommodation(builder.NewAccommodationBuilder())
	req := s.dayTourRequest(acc)

	s.Run("unknown accommodation", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).
			Return(nil, infra.WrapRepoErr("accommodation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.quoteQueries.Resolve(context.Background(), req)
		s.ErrorIs(err, queries.ErrAccommodationNotFound)
	})

	s.Run("no rate table configured", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).
			Return(nil, infra.WrapRepoErr("rate table not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.quoteQueries.Resolve(context.Background(), req)
		s.ErrorIs(err, queries.ErrRateTableMissing)
	})

	s.Run("negative ticket counts are a request error", func() {
		bad := req
		bad.AdultCount = -1

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)

		_, err := s.quoteQueries.Resolve(context.Background(), bad)
		s.ErrorIs(err, queries.ErrInvalidQuoteRequest)
	})

	s.Run("an unknown tour mode string is a request error", func() {
		bad := req
		bad.TourMode = ptr.To("afternoon")

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)

		_, err := s.quoteQueries.Resolve(context.Background(), bad)
		s.ErrorIs(err, queries.ErrInvalidQuoteRequest)
	})

	s.Run("a missing tour mode is an unavailable quote", func() {
		incomplete := req
		incomplete.TourMode = nil

		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, nil)

		view, err := s.quoteQueries.Resolve(context.Background(), incomplete)

		s.Require().NoError(err)
		s.False(view.Available)
		s.Equal(reservation.ErrMissingTourMode.Error(), view.Reason)
	})

	s.Run("loader failures propagate", func() {
		s.mockAccommodations.EXPECT().DomainByID(gomock.Any(), acc.ID()).Return(acc, nil)
		s.mockRates.EXPECT().FindCurrent(gomock.Any()).Return(s.rateView(), nil)
		s.mockBlocked.EXPECT().ActiveFrom(gomock.Any(), acc.ID(), gomock.Any(), nil).
			Return(nil, errors.New("connection reset"))

		_, err := s.quoteQueries.Resolve(context.Background(), req)
		s.Error(err)
	})
}
