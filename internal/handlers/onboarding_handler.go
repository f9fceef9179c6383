package handlers

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "celerey/internal/errors"
	"celerey/internal/logger"
	"celerey/internal/onboarding"
	"celerey/internal/services"
)

const eventsHeartbeat = 25 * time.Second

// OnboardingHandler handles the onboarding wizard of the session in the token.
type OnboardingHandler struct {
	onboardingService services.OnboardingServicer
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingService services.OnboardingServicer) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

// SetStepRequest moves the wizard to a step.
type SetStepRequest struct {
	Step int `json:"step" binding:"required"`
}

// CountryRequest names an asset location.
type CountryRequest struct {
	Country string `json:"country" binding:"notblank,max=100"`
}

// SnapshotQuery selects the display currency of the financial snapshot.
type SnapshotQuery struct {
	Currency string `form:"currency" binding:"omitempty,display_currency"`
}

// SuggestionsResponse lists matching countries.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// GetState returns the session's record
// @Summary     Get onboarding state
// @Description Get the record and progress of the current onboarding session
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.OnboardingState "Onboarding state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /onboarding [get]
func (h *OnboardingHandler) GetState(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.GetState(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Update merges a partial update into the record
// @Summary     Update onboarding record
// @Description Merge the present fields into the record; absent fields are left untouched
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body onboarding.Patch true "Fields to change"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /onboarding [patch]
func (h *OnboardingHandler) Update(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var patch onboarding.Patch
	if err := bindJSON(c, &patch, true); err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.Update(c.Request.Context(), sessionID, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SetStep moves the wizard to a step
// @Summary     Set current step
// @Description Move the wizard to step 1, 2 or 3
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetStepRequest true "Target step"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Invalid step"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/step [put]
func (h *OnboardingHandler) SetStep(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInvalidStep, err))
		return
	}

	state, err := h.onboardingService.SetStep(c.Request.Context(), sessionID, req.Step)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// CompleteStep marks a step as completed
// @Summary     Complete a step
// @Description Record a step as completed without validating its screen
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       step path int true "Step number"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Invalid step"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/steps/{step}/complete [post]
func (h *OnboardingHandler) CompleteStep(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	step, err := parseStep(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.CompleteStep(c.Request.Context(), sessionID, step)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Reset discards the record
// @Summary     Reset onboarding
// @Description Replace the record with an empty one at step 1
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.OnboardingState "Reset state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/reset [post]
func (h *OnboardingHandler) Reset(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.Reset(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Navigate applies the step named in the URL
// @Summary     Navigate to a step
// @Description Apply the step query parameter the way the wizard URL does; a missing step means 1
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       step query int false "Step number"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Invalid step"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/navigate [get]
func (h *OnboardingHandler) Navigate(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.Navigate(c.Request.Context(), sessionID, c.Query("step"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// SubmitStep merges and validates one screen
// @Summary     Submit a screen
// @Description Merge the screen's fields, validate the screen and advance to the next step
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       step    path int              true  "Step number"
// @Param       request body onboarding.Patch false "Screen fields"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /onboarding/steps/{step} [post]
func (h *OnboardingHandler) SubmitStep(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	step, err := parseStep(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var patch onboarding.Patch
	if err := bindJSON(c, &patch, true); err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	var state *services.OnboardingState
	switch step {
	case onboarding.StepPersonalInfo:
		state, err = h.onboardingService.SubmitPersonalInfo(ctx, sessionID, patch)
	case onboarding.StepFinancialSnapshot:
		state, err = h.onboardingService.SubmitFinancialSnapshot(ctx, sessionID, patch)
	default:
		state, err = h.onboardingService.SubmitGoals(ctx, sessionID, patch)
	}
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// AddAssetCountry adds an asset location
// @Summary     Add asset country
// @Description Add a country where the applicant holds assets
// @Tags        onboarding
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CountryRequest true "Country"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     422 {object} ErrorResponse "Validation failed"
// @Router      /onboarding/countries [post]
func (h *OnboardingHandler) AddAssetCountry(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CountryRequest
	if err := bindJSON(c, &req, false); err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.AddAssetCountry(c.Request.Context(), sessionID, req.Country)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// RemoveAssetCountry removes an asset location
// @Summary     Remove asset country
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       country path string true "Country"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/countries/{country} [delete]
func (h *OnboardingHandler) RemoveAssetCountry(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.RemoveAssetCountry(c.Request.Context(), sessionID, c.Param("country"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// CountrySuggestions filters the asset country suggestions
// @Summary     Suggest asset countries
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       q query string false "Search text"
// @Success     200 {object} SuggestionsResponse "Matching countries"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/countries/suggestions [get]
func (h *OnboardingHandler) CountrySuggestions(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	suggestions, err := h.onboardingService.CountrySuggestions(c.Request.Context(), sessionID, c.Query("q"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}

// ToggleGoal selects or deselects a financial goal
// @Summary     Toggle financial goal
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       goal path string true "Goal value"
// @Success     200 {object} services.OnboardingState "Updated state"
// @Failure     400 {object} ErrorResponse "Unknown goal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/goals/{goal}/toggle [post]
func (h *OnboardingHandler) ToggleGoal(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	state, err := h.onboardingService.ToggleGoal(c.Request.Context(), sessionID, c.Param("goal"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// FinancialSnapshot renders the amounts in a display currency
// @Summary     Get financial snapshot
// @Description Get the income, assets and liabilities formatted in a display currency
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Param       currency query string false "Display currency (default USD)"
// @Success     200 {object} services.FinancialSnapshot "Financial snapshot"
// @Failure     400 {object} ErrorResponse "Unsupported currency"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/snapshot [get]
func (h *OnboardingHandler) FinancialSnapshot(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SnapshotQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrUnsupportedCurrency, err))
		return
	}

	snapshot, err := h.onboardingService.FinancialSnapshot(c.Request.Context(), sessionID, q.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// BookingSummary returns the booking screen details
// @Summary     Get booking summary
// @Tags        onboarding
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BookingSummary "Booking summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/booking [get]
func (h *OnboardingHandler) BookingSummary(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.onboardingService.BookingSummary(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Events streams record changes as Server-Sent Events
// @Summary     Stream onboarding changes
// @Description Server-Sent Events: a "state" event first, then one event per change named after its kind
// @Tags        onboarding
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       token query string false "Session token, for clients that cannot set headers"
// @Success     200 {object} services.StateEvent "Event stream"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /onboarding/events [get]
func (h *OnboardingHandler) Events(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	events, err := h.onboardingService.Subscribe(ctx, sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	state, err := h.onboardingService.GetState(ctx, sessionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	log := logger.ForSession(sessionID)
	log.Debug("event stream opened")
	defer log.Debug("event stream closed")

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("state", state)

	heartbeat := time.NewTicker(eventsHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Change.Kind), ev)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"time": time.Now().UTC()})
			return true
		case <-ctx.Done():
			return false
		}
	})
}

// parseStep reads the :step path parameter as one of the wizard's steps.
func parseStep(c *gin.Context) (int, error) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidStep, err)
	}
	if !onboarding.ValidStep(step) {
		return 0, apperrors.ErrInvalidStep
	}
	return step, nil
}
