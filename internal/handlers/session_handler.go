package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "celerey/internal/errors"
	"celerey/internal/middleware"
	"celerey/internal/services"
)

// SessionHandler starts onboarding sessions.
type SessionHandler struct {
	onboardingService services.OnboardingServicer
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(onboardingService services.OnboardingServicer) *SessionHandler {
	return &SessionHandler{onboardingService: onboardingService}
}

// BeginJourneyRequest is the email captured on the landing page.
type BeginJourneyRequest struct {
	Email string `json:"email" binding:"notblank,loose_email,max=255"`
}

// SessionResponse carries the new session and the token that addresses it.
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
}

// BeginJourney starts a new onboarding session
// @Summary     Begin the onboarding journey
// @Description Start an onboarding session from the landing page email and return its session token
// @Tags        sessions
// @Accept      json
// @Produce     json
// @Param       request body BeginJourneyRequest true "Landing page email"
// @Success     201 {object} SessionResponse "Session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sessions [post]
func (h *SessionHandler) BeginJourney(c *gin.Context) {
	var req BeginJourneyRequest
	if err := bindJSON(c, &req, false); err != nil {
		respondWithError(c, err)
		return
	}

	sessionID, err := h.onboardingService.BeginJourney(c.Request.Context(), req.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateSessionToken(sessionID)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{SessionID: sessionID, Token: token})
}
