//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"resort-booking/internal/domain/user"
	"resort-booking/internal/handler/api"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	commandsmock "resort-booking/tests/mock/commands"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	// role injected by the stand-in auth middleware; per-test override
	role user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.role = user.RoleFrontdesk

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: every request carries an authenticated staff identity
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
		c.Set("user_role", s.role)
		c.Next()
	})

	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.List)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.POST("/reservations/:id/confirm", s.handler.Confirm)
	s.router.POST("/reservations/:id/check-in", s.handler.CheckIn)
	s.router.POST("/reservations/:id/cancel", s.handler.Cancel)
	s.router.POST("/reservations/:id/no-show", s.handler.NoShow)
	s.router.POST("/reservations/:id/reschedule", s.handler.Reschedule)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildDTO()
	returnView := b.BuildReadModel()

	s.Run("success: returns 201 with the priced reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.GuestName, response.GuestName)
		s.Equal(returnView.TotalCentavos, response.TotalCentavos)
		s.Equal(returnView.MinimumPayableCentavos, response.MinimumPayableCentavos)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"guest_name": 42}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "accommodation not found",
				commandsError:  commands.ErrAccommodationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Accommodation not found",
			},
			{
				name:           "no rate table configured",
				commandsError:  commands.ErrRateTableMissing,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No rate table is configured",
			},
			{
				name:           "dates unavailable",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "The selected dates are unavailable",
			},
			{
				name:           "domain validation failure",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildReadModel()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 when reservation does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/reservations"
	items := []*queries.ReservationListItem{
		{ID: uuid.New(), AccommodationName: "Cottage A", GuestName: "Juan dela Cruz", Status: "pending", TotalCentavos: 180000, CreatedAt: time.Now()},
		{ID: uuid.New(), AccommodationName: "Cottage B", GuestName: "Maria Santos", Status: "confirmed", TotalCentavos: 240000, CreatedAt: time.Now().Add(-time.Hour)},
	}

	s.Run("success: returns items without a cursor on the last page", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{}, nil, 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: returns next cursor when more pages remain", func() {
		next := &queries.Cursor{After: "b3BhcXVl"}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ReservationFilter{}, nil, 1).
			Return(items[:1], next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=1", nil, "bearer-token")

		var response resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
	})

	s.Run("success: forwards filters and cursor", func() {
		accommodationID := uuid.New()
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any(), 50).
			DoAndReturn(func(_ any, filter queries.ReservationFilter, after *queries.Cursor, _ int) ([]*queries.ReservationListItem, *queries.Cursor, error) {
				s.Require().NotNil(filter.Status)
				s.Equal("pending", *filter.Status)
				s.Require().NotNil(filter.AccommodationID)
				s.Equal(accommodationID, *filter.AccommodationID)
				s.Require().NotNil(after)
				s.Equal("b3BhcXVl", after.After)
				return nil, nil, nil
			}).Times(1)

		query := "?status=pending&accommodation_id=" + accommodationID.String() + "&after=b3BhcXVl&limit=50"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+query, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on bad query parameters", func() {
		testCases := []struct {
			name        string
			query       string
			expectedMsg string
		}{
			{name: "unknown status", query: "?status=bogus", expectedMsg: "Invalid status filter"},
			{name: "malformed accommodation id", query: "?accommodation_id=nope", expectedMsg: "Invalid accommodation ID format"},
			{name: "malformed from", query: "?from=yesterday", expectedMsg: "Invalid 'from' parameter"},
			{name: "malformed to", query: "?to=tomorrow", expectedMsg: "Invalid 'to' parameter"},
			{name: "non-numeric limit", query: "?limit=abc", expectedMsg: "Invalid limit parameter"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+tc.query, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on undecodable cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=garbage", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

func (s *ReservationHandlerTestSuite) TestLifecycle() {
	returnView := builder.NewReservationBuilder().BuildReadModel()
	id := returnView.ID

	s.Run("confirm: returns 200", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("check-in: returns 200", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("no-show: returns 200", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/no-show", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("confirm: 422 when transition is not allowed", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), id).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	returnView := builder.NewReservationBuilder().BuildReadModel()
	id := returnView.ID

	s.Run("frontdesk cannot override the cutoff", func() {
		s.role = user.RoleFrontdesk
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, false).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("manager cancels with the override flag set", func() {
		s.role = user.RoleManager
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("admin cancels with the override flag set", func() {
		s.role = user.RoleAdmin
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 422 when inside the cutoff without override", func() {
		s.role = user.RoleFrontdesk
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, false).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

func (s *ReservationHandlerTestSuite) TestReschedule() {
	returnView := builder.NewReservationBuilder().BuildReadModel()
	id := returnView.ID
	reqBody := builder.NewReservationBuilder().BuildRescheduleDTO()

	s.Run("success: returns 200 with the repriced reservation", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, reqBody).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/reschedule", reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 409 when the new slot conflicts", func() {
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), id, reqBody).
			Return(nil, commands.ErrReservationConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/reschedule", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "The selected dates are unavailable")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/reschedule", map[string]any{"adult_count": "two"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
