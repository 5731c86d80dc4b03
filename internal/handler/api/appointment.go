package api

import (
	"errors"
	"net/http"

	reqdto "barber-booking/internal/handler/dto/request"
	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	bookingUseCase usecase.BookingUseCase
	statusUseCase  usecase.StatusUseCase
}

func NewAppointmentHandler(bookingUseCase usecase.BookingUseCase, statusUseCase usecase.StatusUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		bookingUseCase: bookingUseCase,
		statusUseCase:  statusUseCase,
	}
}

// @Summary Create appointment
// @Description Public booking form submission; the appointment starts out pending
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment draft"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.bookingUseCase.Create(c.Request.Context(), req.ToDraft())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "השעה שנבחרה כבר תפוסה, אנא בחר שעה אחרת")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointment(created))
}

// @Summary List appointments
// @Description Full collection for the admin dashboard; ordering is the consumer's concern
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.bookingUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointments(appts))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	appt, err := h.bookingUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(appt))
}

// @Summary Update appointment status
// @Description Applies a status transition and returns the generated notification link, if any
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.StatusUpdateResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	result, err := h.statusUseCase.Set(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		case errors.Is(err, errs.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unrecognized status")
		case errors.Is(err, errs.ErrTransitionNotPermitted):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Status transition not permitted")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.StatusUpdateResponse{
		Appointment:  resdto.FromAppointment(result.Appointment),
		WhatsAppLink: result.WhatsAppLink,
	})
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.bookingUseCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
