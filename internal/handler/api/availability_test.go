//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"barber-booking/internal/handler/api"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase"
	"barber-booking/tests/common/httptest"
	usecasemock "barber-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *usecasemock.MockAvailabilityUseCase
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = usecasemock.NewMockAvailabilityUseCase(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability)

	s.router.GET("/api/available-slots/:date", s.handler.GetAvailableSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailableSlots() {
	const date = "2025-03-10"
	url := "/api/available-slots/" + date

	s.Run("success: returns the resolved slot sets", func() {
		s.mockAvailability.EXPECT().Resolve(gomock.Any(), date).
			Return(&usecase.Availability{
				Date:         date,
				Available:    []string{"12:00", "13:00"},
				Booked:       []string{"09:00", "10:00", "11:00"},
				CalendarBusy: []string{"15:00"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(date, response.Date)
		s.Equal([]string{"12:00", "13:00"}, response.AvailableSlots)
		s.Equal([]string{"09:00", "10:00", "11:00"}, response.BookedSlots)
		s.Equal([]string{"15:00"}, response.CalendarBusySlots)
	})

	s.Run("error: 400 for a malformed date", func() {
		s.mockAvailability.EXPECT().Resolve(gomock.Any(), "bad-date").
			Return(nil, errs.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/available-slots/bad-date", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockAvailability.EXPECT().Resolve(gomock.Any(), date).
			Return(nil, errors.New("read failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
