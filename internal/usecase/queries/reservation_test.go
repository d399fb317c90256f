//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort-booking/internal/infra"
	"resort-booking/internal/usecase/queries"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationQueriesTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockReadStore      *queriesmock.MockReservationReadStore
	reservationQueries queries.ReservationQueries
}

func (s *ReservationQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.reservationQueries = queries.NewReservationQueries(s.mockReadStore)
}

func (s *ReservationQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationQueriesSuite(t *testing.T) {
	suite.Run(t, new(ReservationQueriesTestSuite))
}

func listItems(n int) []*queries.ReservationListItem {
	items := make([]*queries.ReservationListItem, n)
	base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	for i := range items {
		items[i] = &queries.ReservationListItem{
			ID:        uuid.New(),
			GuestName: "Guest",
			Status:    "pending",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func (s *ReservationQueriesTestSuite) TestGetByID() {
	id := uuid.New()

	s.Run("returns the view", func() {
		view := &queries.ReservationView{ID: id, GuestName: "Juan dela Cruz"}
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(view, nil)

		got, err := s.reservationQueries.GetByID(context.Background(), id)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("maps a not-found row to the sentinel error", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", errors.New("no rows"), infra.KindNotFound))

		_, err := s.reservationQueries.GetByID(context.Background(), id)
		s.ErrorIs(err, queries.ErrReservationNotFound)
	})

	s.Run("passes other failures through", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, errors.New("connection reset"))

		_, err := s.reservationQueries.GetByID(context.Background(), id)
		s.Error(err)
		s.NotErrorIs(err, queries.ErrReservationNotFound)
	})
}

func (s *ReservationQueriesTestSuite) TestList() {
	s.Run("a short page comes back without a next cursor", func() {
		items := listItems(3)
		s.mockReadStore.EXPECT().
			FindPage(gomock.Any(), queries.ReservationFilter{}, nil, nil, int32(11)).
			Return(items, nil)

		got, next, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, nil, 10)

		s.Require().NoError(err)
		s.Len(got, 3)
		s.Nil(next)
	})

	s.Run("an extra row beyond the limit yields a cursor at the last kept row", func() {
		items := listItems(11)
		s.mockReadStore.EXPECT().
			FindPage(gomock.Any(), queries.ReservationFilter{}, nil, nil, int32(11)).
			Return(items, nil)

		got, next, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, nil, 10)

		s.Require().NoError(err)
		s.Len(got, 10)
		s.Require().NotNil(next)

		last := items[9]
		cursorTime, cursorID, err := queries.DecodeAfterCursor(next.After)
		s.Require().NoError(err)
		s.Equal(last.ID, cursorID)
		s.True(last.CreatedAt.Equal(cursorTime))
	})

	s.Run("a zero limit falls back to the default page size", func() {
		s.mockReadStore.EXPECT().
			FindPage(gomock.Any(), queries.ReservationFilter{}, nil, nil, int32(21)).
			Return(nil, nil)

		_, _, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, nil, 0)
		s.Require().NoError(err)
	})

	s.Run("a valid cursor is decoded into the keyset bounds", func() {
		last := listItems(1)[0]
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(last.CreatedAt, last.ID)}

		s.mockReadStore.EXPECT().
			FindPage(gomock.Any(), queries.ReservationFilter{}, gomock.Any(), gomock.Any(), int32(21)).
			DoAndReturn(func(_ any, _ queries.ReservationFilter, afterCreatedAt *time.Time, afterID *uuid.UUID, _ int32) ([]*queries.ReservationListItem, error) {
				s.Require().NotNil(afterCreatedAt)
				s.Require().NotNil(afterID)
				s.True(last.CreatedAt.Equal(*afterCreatedAt))
				s.Equal(last.ID, *afterID)
				return nil, nil
			})

		_, _, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, cursor, 0)
		s.Require().NoError(err)
	})

	s.Run("an undecodable cursor is rejected before hitting the store", func() {
		cursor := &queries.Cursor{After: "garbage"}

		_, _, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, cursor, 0)
		s.ErrorIs(err, queries.ErrInvalidCursor)
	})

	s.Run("store failures propagate", func() {
		s.mockReadStore.EXPECT().
			FindPage(gomock.Any(), queries.ReservationFilter{}, nil, nil, int32(21)).
			Return(nil, errors.New("connection reset"))

		_, _, err := s.reservationQueries.List(context.Background(), queries.ReservationFilter{}, nil, 0)
		s.Error(err)
	})
}
