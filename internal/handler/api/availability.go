package api

import (
	"errors"
	"net/http"

	resdto "barber-booking/internal/handler/dto/response"
	"barber-booking/internal/handler/httperr"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availabilityUseCase usecase.AvailabilityUseCase
}

func NewAvailabilityHandler(availabilityUseCase usecase.AvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUseCase: availabilityUseCase,
	}
}

// @Summary Available slots for a date
// @Description Slot catalog minus bookings, breaks and external calendar busy times
// @Tags availability
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /available-slots/{date} [get]
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	availability, err := h.availabilityUseCase.Resolve(c.Request.Context(), c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}
