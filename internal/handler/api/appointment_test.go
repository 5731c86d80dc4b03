//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"barber-booking/internal/domain/appointment"
	"barber-booking/internal/handler/api"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase"
	"barber-booking/tests/common/builder"
	"barber-booking/tests/common/httptest"
	"barber-booking/tests/common/testutil"
	usecasemock "barber-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
	mockStatus  *usecasemock.MockStatusUseCase
	handler     *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	s.mockStatus = usecasemock.NewMockStatusUseCase(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockBooking, s.mockStatus)

	s.router.POST("/api/appointments", s.handler.Create)
	s.router.GET("/api/appointments", s.handler.List)
	s.router.GET("/api/appointments/:id", s.handler.Get)
	s.router.PUT("/api/appointments/:id/status", s.handler.UpdateStatus)
	s.router.DELETE("/api/appointments/:id", s.handler.Delete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/api/appointments"

	reqBody := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	created := builder.NewAppointmentBuilder().BuildEntity()

	s.Run("success: returns 201 Created with a pending appointment", func() {
		s.mockBooking.EXPECT().Create(gomock.Any(), reqBody.ToDraft()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"name", "phone", "service", "date", "time"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 with Hebrew message when the slot is taken", func() {
		s.mockBooking.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "השעה שנבחרה כבר תפוסה")
	})

	s.Run("error: 400 on domain validation failure", func() {
		s.mockBooking.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(appointment.ErrUnknownService, errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockBooking.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("disk full")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	url := "/api/appointments"

	s.Run("success: returns the full collection", func() {
		appts := []appointment.Appointment{
			*builder.NewAppointmentBuilder().BuildEntity(),
			*builder.NewAppointmentBuilder().WithID("1741600000001").WithTime("12:00").AsApproved().BuildEntity(),
		}
		s.mockBooking.EXPECT().List(gomock.Any()).Return(appts, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("approved", response[1].Status)
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockBooking.EXPECT().List(gomock.Any()).Return(nil, errors.New("read failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	created := builder.NewAppointmentBuilder().BuildEntity()
	url := "/api/appointments/" + created.ID

	s.Run("success: returns the appointment", func() {
		s.mockBooking.EXPECT().Get(gomock.Any(), created.ID).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(created.ID, response.ID)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockBooking.EXPECT().Get(gomock.Any(), created.ID).
			Return(nil, errs.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdateStatus() {
	appt := builder.NewAppointmentBuilder().AsApproved().BuildEntity()
	url := "/api/appointments/" + appt.ID + "/status"
	link := "https://wa.me/972501234567?text=approved"

	s.Run("success: returns the record and the WhatsApp link", func() {
		s.mockStatus.EXPECT().Set(gomock.Any(), appt.ID, "approved").
			Return(&usecase.StatusResult{Appointment: appt, WhatsAppLink: link}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"status": "approved"}, "")

		var response resdto.StatusUpdateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Appointment.Status)
		s.Contains(response.WhatsAppLink, "972501234567")
	})

	s.Run("error: 400 when the body has no status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			usecaseError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown appointment",
				usecaseError:   errs.ErrAppointmentNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Appointment not found",
			},
			{
				name:           "unrecognized status",
				usecaseError:   errs.ErrInvalidStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unrecognized status",
			},
			{
				name:           "transition not permitted",
				usecaseError:   errs.ErrTransitionNotPermitted,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Status transition not permitted",
			},
			{
				name:           "internal server error",
				usecaseError:   errors.New("write failed"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockStatus.EXPECT().Set(gomock.Any(), appt.ID, "approved").
					Return(nil, tc.usecaseError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{"status": "approved"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestDelete() {
	appt := builder.NewAppointmentBuilder().BuildEntity()
	url := "/api/appointments/" + appt.ID

	s.Run("success: returns 204 No Content", func() {
		s.mockBooking.EXPECT().Delete(gomock.Any(), appt.ID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown id", func() {
		s.mockBooking.EXPECT().Delete(gomock.Any(), appt.ID).
			Return(errs.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}
