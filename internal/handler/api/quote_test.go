//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"resort-booking/internal/handler/api"
	reqdto "resort-booking/internal/handler/dto/request"
	resdto "resort-booking/internal/handler/dto/response"
	"resort-booking/internal/usecase/queries"
	"resort-booking/tests/common/builder"
	"resort-booking/tests/common/httptest"
	queriesmock "resort-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	s.router.POST("/quotes", s.handler.Resolve)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) quoteRequest() reqdto.QuoteRequest {
	b := builder.NewReservationBuilder()
	dto := b.BuildDTO()
	return reqdto.QuoteRequest{
		AccommodationID: dto.AccommodationID,
		StaySelection:   dto.StaySelection,
	}
}

func (s *QuoteHandlerTestSuite) TestResolve() {
	url := "/quotes"
	reqBody := s.quoteRequest()

	s.Run("success: returns the price breakdown for an open slot", func() {
		view := &queries.QuoteView{
			Available:              true,
			GuestCount:             4,
			AccommodationCentavos:  150000,
			AdultAmountCentavos:    20000,
			ChildAmountCentavos:    10000,
			EntranceTotalCentavos:  30000,
			TotalCentavos:          180000,
			MinimumPayableCentavos: 75000,
		}
		s.mockQueries.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req queries.QuoteRequest) (*queries.QuoteView, error) {
				s.Equal(reqBody.AccommodationID, req.AccommodationID)
				s.Equal(reqBody.AdultCount, req.AdultCount)
				s.Equal(reqBody.ChildCount, req.ChildCount)
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
		s.Equal(int64(180000), response.TotalCentavos)
		s.Equal(int64(75000), response.MinimumPayableCentavos)
	})

	s.Run("success: an occupied slot is a 200 with available=false", func() {
		view := &queries.QuoteView{
			Available: false,
			Reason:    "The selected dates overlap an existing booking",
		}
		s.mockQueries.EXPECT().Resolve(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
		s.NotEmpty(response.Reason)
		s.Zero(response.TotalCentavos)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"adult_count": "two"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when accommodation id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"adult_count": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "accommodation not found",
				queriesError:   queries.ErrAccommodationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Accommodation not found",
			},
			{
				name:           "no rate table configured",
				queriesError:   queries.ErrRateTableMissing,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No rate table is configured",
			},
			{
				name:           "incoherent stay selection",
				queriesError:   queries.ErrInvalidQuoteRequest,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid quote request",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Resolve(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
