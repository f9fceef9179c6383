package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "celerey/internal/errors"
	"celerey/internal/pagination"
	"celerey/internal/services"
	"celerey/internal/uuid"
)

// ActivityHandler exposes the onboarding activity journal to operators.
type ActivityHandler struct {
	activityService services.ActivityServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService services.ActivityServicer) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// History lists the recorded events of a session
// @Summary     Get session activity
// @Description Get a paginated list of step and reset events of an onboarding session, oldest first
// @Tags        admin
// @Produce     json
// @Security    AdminKey
// @Param       id        path  string true  "Session ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.OnboardingEvent] "Paginated events"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /admin/sessions/{id}/events [get]
func (h *ActivityHandler) History(c *gin.Context) {
	sessionID := c.Param("id")
	if !uuid.IsValid(sessionID) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid session ID"))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.activityService.History(c.Request.Context(), sessionID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
