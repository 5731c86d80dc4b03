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

type BreakHandler struct {
	breakUseCase usecase.BreakUseCase
}

func NewBreakHandler(breakUseCase usecase.BreakUseCase) *BreakHandler {
	return &BreakHandler{
		breakUseCase: breakUseCase,
	}
}

// @Summary List breaks
// @Tags breaks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BreakResponse
// @Failure 401 {object} httperr.Response
// @Router /breaks [get]
func (h *BreakHandler) List(c *gin.Context) {
	breaks, err := h.breakUseCase.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBreaks(breaks))
}

// @Summary Declare a break
// @Description Blocks slots on a date regardless of existing appointments
// @Tags breaks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBreakRequest true "Break request"
// @Success 201 {object} resdto.BreakResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /breaks [post]
func (h *BreakHandler) Create(c *gin.Context) {
	var req reqdto.CreateBreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	created, err := h.breakUseCase.Add(c.Request.Context(), req.Date, req.Times)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBreak(created))
}

// @Summary Remove a break
// @Tags breaks
// @Security BearerAuth
// @Param id path string true "Break ID"
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /breaks/{id} [delete]
func (h *BreakHandler) Delete(c *gin.Context) {
	if err := h.breakUseCase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, errs.ErrBreakNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Break not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
