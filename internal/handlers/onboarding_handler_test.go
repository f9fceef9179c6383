package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "celerey/internal/errors"
	"celerey/internal/onboarding"
	"celerey/internal/services"
)

// --- mock onboarding service ---

type mockOnboardingService struct {
	beginJourneyFn            func(ctx context.Context, email string) (string, error)
	getStateFn                func(ctx context.Context, sessionID string) (*services.OnboardingState, error)
	updateFn                  func(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error)
	setStepFn                 func(ctx context.Context, sessionID string, step int) (*services.OnboardingState, error)
	completeStepFn            func(ctx context.Context, sessionID string, step int) (*services.OnboardingState, error)
	resetFn                   func(ctx context.Context, sessionID string) (*services.OnboardingState, error)
	navigateFn                func(ctx context.Context, sessionID, stepParam string) (*services.OnboardingState, error)
	submitPersonalInfoFn      func(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error)
	submitFinancialSnapshotFn func(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error)
	submitGoalsFn             func(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error)
	addAssetCountryFn         func(ctx context.Context, sessionID, country string) (*services.OnboardingState, error)
	removeAssetCountryFn      func(ctx context.Context, sessionID, country string) (*services.OnboardingState, error)
	toggleGoalFn              func(ctx context.Context, sessionID, goal string) (*services.OnboardingState, error)
	countrySuggestionsFn      func(ctx context.Context, sessionID, query string) ([]string, error)
	financialSnapshotFn       func(ctx context.Context, sessionID, currency string) (*services.FinancialSnapshot, error)
	bookingSummaryFn          func(ctx context.Context, sessionID string) (*services.BookingSummary, error)
	subscribeFn               func(ctx context.Context, sessionID string) (<-chan services.StateEvent, error)
}

func defaultState(sessionID string) *services.OnboardingState {
	return &services.OnboardingState{
		SessionID: sessionID,
		Hydrated:  true,
		Record:    onboarding.DefaultRecord(),
		Progress:  services.Progress{CurrentStep: 1},
	}
}

func (m *mockOnboardingService) BeginJourney(ctx context.Context, email string) (string, error) {
	if m.beginJourneyFn != nil {
		return m.beginJourneyFn(ctx, email)
	}
	return testSessionID, nil
}

func (m *mockOnboardingService) GetState(ctx context.Context, sessionID string) (*services.OnboardingState, error) {
	if m.getStateFn != nil {
		return m.getStateFn(ctx, sessionID)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) Update(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, sessionID, patch)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) SetStep(ctx context.Context, sessionID string, step int) (*services.OnboardingState, error) {
	if m.setStepFn != nil {
		return m.setStepFn(ctx, sessionID, step)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) CompleteStep(ctx context.Context, sessionID string, step int) (*services.OnboardingState, error) {
	if m.completeStepFn != nil {
		return m.completeStepFn(ctx, sessionID, step)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) Reset(ctx context.Context, sessionID string) (*services.OnboardingState, error) {
	if m.resetFn != nil {
		return m.resetFn(ctx, sessionID)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) Navigate(ctx context.Context, sessionID, stepParam string) (*services.OnboardingState, error) {
	if m.navigateFn != nil {
		return m.navigateFn(ctx, sessionID, stepParam)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) SubmitPersonalInfo(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error) {
	if m.submitPersonalInfoFn != nil {
		return m.submitPersonalInfoFn(ctx, sessionID, patch)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) SubmitFinancialSnapshot(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error) {
	if m.submitFinancialSnapshotFn != nil {
		return m.submitFinancialSnapshotFn(ctx, sessionID, patch)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) SubmitGoals(ctx context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error) {
	if m.submitGoalsFn != nil {
		return m.submitGoalsFn(ctx, sessionID, patch)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) AddAssetCountry(ctx context.Context, sessionID, country string) (*services.OnboardingState, error) {
	if m.addAssetCountryFn != nil {
		return m.addAssetCountryFn(ctx, sessionID, country)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) RemoveAssetCountry(ctx context.Context, sessionID, country string) (*services.OnboardingState, error) {
	if m.removeAssetCountryFn != nil {
		return m.removeAssetCountryFn(ctx, sessionID, country)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) ToggleGoal(ctx context.Context, sessionID, goal string) (*services.OnboardingState, error) {
	if m.toggleGoalFn != nil {
		return m.toggleGoalFn(ctx, sessionID, goal)
	}
	return defaultState(sessionID), nil
}

func (m *mockOnboardingService) CountrySuggestions(ctx context.Context, sessionID, query string) ([]string, error) {
	if m.countrySuggestionsFn != nil {
		return m.countrySuggestionsFn(ctx, sessionID, query)
	}
	return []string{}, nil
}

func (m *mockOnboardingService) FinancialSnapshot(ctx context.Context, sessionID, currency string) (*services.FinancialSnapshot, error) {
	if m.financialSnapshotFn != nil {
		return m.financialSnapshotFn(ctx, sessionID, currency)
	}
	return &services.FinancialSnapshot{}, nil
}

func (m *mockOnboardingService) BookingSummary(ctx context.Context, sessionID string) (*services.BookingSummary, error) {
	if m.bookingSummaryFn != nil {
		return m.bookingSummaryFn(ctx, sessionID)
	}
	return &services.BookingSummary{}, nil
}

func (m *mockOnboardingService) Subscribe(ctx context.Context, sessionID string) (<-chan services.StateEvent, error) {
	if m.subscribeFn != nil {
		return m.subscribeFn(ctx, sessionID)
	}
	ch := make(chan services.StateEvent)
	close(ch)
	return ch, nil
}

// verify interface compliance
var _ services.OnboardingServicer = (*mockOnboardingService)(nil)

func setupOnboardingRouter(handler *OnboardingHandler) *gin.Engine {
	r := gin.New()
	s := r.Group("", injectSessionID(testSessionID))
	s.GET("/onboarding", handler.GetState)
	s.PATCH("/onboarding", handler.Update)
	s.PUT("/onboarding/step", handler.SetStep)
	s.POST("/onboarding/reset", handler.Reset)
	s.GET("/onboarding/navigate", handler.Navigate)
	s.POST("/onboarding/steps/:step", handler.SubmitStep)
	s.POST("/onboarding/steps/:step/complete", handler.CompleteStep)
	s.POST("/onboarding/countries", handler.AddAssetCountry)
	s.DELETE("/onboarding/countries/:country", handler.RemoveAssetCountry)
	s.GET("/onboarding/countries/suggestions", handler.CountrySuggestions)
	s.POST("/onboarding/goals/:goal/toggle", handler.ToggleGoal)
	s.GET("/onboarding/snapshot", handler.FinancialSnapshot)
	s.GET("/onboarding/booking", handler.BookingSummary)
	s.GET("/onboarding/events", handler.Events)
	return r
}

func TestOnboardingHandler_GetState(t *testing.T) {
	t.Run("returns 200 with state", func(t *testing.T) {
		var gotSession string
		svc := &mockOnboardingService{
			getStateFn: func(_ context.Context, sessionID string) (*services.OnboardingState, error) {
				gotSession = sessionID
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotSession != testSessionID {
			t.Errorf("expected session %s, got %s", testSessionID, gotSession)
		}
		result := parseJSON(t, rec)
		record := result["record"].(map[string]interface{})
		if record["currentStep"] != float64(1) {
			t.Errorf("expected currentStep 1, got %v", record["currentStep"])
		}
	})

	t.Run("returns 401 on invalid session", func(t *testing.T) {
		svc := &mockOnboardingService{
			getStateFn: func(context.Context, string) (*services.OnboardingState, error) {
				return nil, apperrors.ErrInvalidSession
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_SESSION")
	})
}

func TestOnboardingHandler_Update(t *testing.T) {
	t.Run("passes only present fields", func(t *testing.T) {
		var got onboarding.Patch
		svc := &mockOnboardingService{
			updateFn: func(_ context.Context, sessionID string, patch onboarding.Patch) (*services.OnboardingState, error) {
				got = patch
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPatch, "/onboarding", `{"firstName":"Ama","agree":false,"dependents":"5+"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.FirstName == nil || *got.FirstName != "Ama" {
			t.Errorf("expected firstName Ama, got %v", got.FirstName)
		}
		if got.Agree == nil || *got.Agree {
			t.Errorf("expected agree=false to be present, got %v", got.Agree)
		}
		if got.Dependents == nil || *got.Dependents != onboarding.DependentsFivePlus {
			t.Errorf("expected 5+ dependents, got %v", got.Dependents)
		}
		if got.LastName != nil {
			t.Errorf("expected lastName absent, got %v", *got.LastName)
		}
	})

	t.Run("returns 422 on invalid choice", func(t *testing.T) {
		r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

		rec := doRequest(r, http.MethodPatch, "/onboarding", `{"gender":"robot"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_FAILED")
		if _, ok := errorFields(t, result)["gender"]; !ok {
			t.Errorf("expected gender field error, got %v", result)
		}
	})

	t.Run("returns 400 on malformed body", func(t *testing.T) {
		r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

		rec := doRequest(r, http.MethodPatch, "/onboarding", `{"firstName":`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestOnboardingHandler_SetStep(t *testing.T) {
	t.Run("returns 200 on valid step", func(t *testing.T) {
		var got int
		svc := &mockOnboardingService{
			setStepFn: func(_ context.Context, sessionID string, step int) (*services.OnboardingState, error) {
				got = step
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPut, "/onboarding/step", `{"step":3}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != 3 {
			t.Errorf("expected step 3, got %d", got)
		}
	})

	t.Run("returns 400 when service rejects step", func(t *testing.T) {
		svc := &mockOnboardingService{
			setStepFn: func(context.Context, string, int) (*services.OnboardingState, error) {
				return nil, apperrors.ErrInvalidStep
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPut, "/onboarding/step", `{"step":7}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STEP")
	})

	t.Run("returns 400 on missing step", func(t *testing.T) {
		r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

		rec := doRequest(r, http.MethodPut, "/onboarding/step", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STEP")
	})
}

func TestOnboardingHandler_CompleteStep(t *testing.T) {
	t.Run("returns 200 on valid step", func(t *testing.T) {
		var got int
		svc := &mockOnboardingService{
			completeStepFn: func(_ context.Context, sessionID string, step int) (*services.OnboardingState, error) {
				got = step
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPost, "/onboarding/steps/2/complete", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != 2 {
			t.Errorf("expected step 2, got %d", got)
		}
	})

	for _, step := range []string{"0", "4", "two"} {
		t.Run("returns 400 on step "+step, func(t *testing.T) {
			r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

			rec := doRequest(r, http.MethodPost, "/onboarding/steps/"+step+"/complete", "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_STEP")
		})
	}
}

func TestOnboardingHandler_Reset(t *testing.T) {
	called := false
	svc := &mockOnboardingService{
		resetFn: func(_ context.Context, sessionID string) (*services.OnboardingState, error) {
			called = true
			return defaultState(sessionID), nil
		},
	}
	r := setupOnboardingRouter(NewOnboardingHandler(svc))

	rec := doRequest(r, http.MethodPost, "/onboarding/reset", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !called {
		t.Error("expected Reset to be called")
	}
}

func TestOnboardingHandler_Navigate(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		wantParam string
	}{
		{"with_step", "/onboarding/navigate?step=2", "2"},
		{"without_step", "/onboarding/navigate", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := "unset"
			svc := &mockOnboardingService{
				navigateFn: func(_ context.Context, sessionID, stepParam string) (*services.OnboardingState, error) {
					got = stepParam
					return defaultState(sessionID), nil
				},
			}
			r := setupOnboardingRouter(NewOnboardingHandler(svc))

			rec := doRequest(r, http.MethodGet, tt.path, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if got != tt.wantParam {
				t.Errorf("expected step param %q, got %q", tt.wantParam, got)
			}
		})
	}
}

func TestOnboardingHandler_SubmitStep(t *testing.T) {
	t.Run("dispatches by step", func(t *testing.T) {
		var calls []string
		record := func(name string) func(context.Context, string, onboarding.Patch) (*services.OnboardingState, error) {
			return func(_ context.Context, sessionID string, _ onboarding.Patch) (*services.OnboardingState, error) {
				calls = append(calls, name)
				return defaultState(sessionID), nil
			}
		}
		svc := &mockOnboardingService{
			submitPersonalInfoFn:      record("personal"),
			submitFinancialSnapshotFn: record("financial"),
			submitGoalsFn:             record("goals"),
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		for _, step := range []string{"1", "2", "3"} {
			rec := doRequest(r, http.MethodPost, "/onboarding/steps/"+step, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("step %s: expected 200, got %d: %s", step, rec.Code, rec.Body.String())
			}
		}

		want := []string{"personal", "financial", "goals"}
		for i := range want {
			if i >= len(calls) || calls[i] != want[i] {
				t.Fatalf("expected calls %v, got %v", want, calls)
			}
		}
	})

	t.Run("returns 422 with field messages", func(t *testing.T) {
		svc := &mockOnboardingService{
			submitPersonalInfoFn: func(context.Context, string, onboarding.Patch) (*services.OnboardingState, error) {
				return nil, apperrors.WithFields(apperrors.ErrValidation, map[string]string{
					"email": "Enter a valid email",
					"agree": "You must agree to continue",
				})
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPost, "/onboarding/steps/1", `{"email":"ama"}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_FAILED")
		fields := errorFields(t, result)
		if fields["email"] != "Enter a valid email" {
			t.Errorf("expected email message, got %v", fields["email"])
		}
		if fields["agree"] != "You must agree to continue" {
			t.Errorf("expected agree message, got %v", fields["agree"])
		}
	})

	t.Run("returns 400 on unknown step", func(t *testing.T) {
		r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

		rec := doRequest(r, http.MethodPost, "/onboarding/steps/4", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_STEP")
	})
}

func TestOnboardingHandler_AssetCountries(t *testing.T) {
	t.Run("adds country", func(t *testing.T) {
		var got string
		svc := &mockOnboardingService{
			addAssetCountryFn: func(_ context.Context, sessionID, country string) (*services.OnboardingState, error) {
				got = country
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPost, "/onboarding/countries", `{"country":"Ghana"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != "Ghana" {
			t.Errorf("expected Ghana, got %s", got)
		}
	})

	t.Run("returns 422 on blank country", func(t *testing.T) {
		r := setupOnboardingRouter(NewOnboardingHandler(&mockOnboardingService{}))

		rec := doRequest(r, http.MethodPost, "/onboarding/countries", `{"country":"  "}`)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_FAILED")
	})

	t.Run("removes escaped country", func(t *testing.T) {
		var got string
		svc := &mockOnboardingService{
			removeAssetCountryFn: func(_ context.Context, sessionID, country string) (*services.OnboardingState, error) {
				got = country
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodDelete, "/onboarding/countries/United%20Kingdom", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != "United Kingdom" {
			t.Errorf("expected United Kingdom, got %q", got)
		}
	})

	t.Run("suggests countries", func(t *testing.T) {
		svc := &mockOnboardingService{
			countrySuggestionsFn: func(_ context.Context, _ string, query string) ([]string, error) {
				if query != "uni" {
					t.Errorf("expected query uni, got %s", query)
				}
				return []string{"United States", "United Kingdom"}, nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding/countries/suggestions?q=uni", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		suggestions := parseJSON(t, rec)["suggestions"].([]interface{})
		if len(suggestions) != 2 {
			t.Errorf("expected 2 suggestions, got %v", suggestions)
		}
	})
}

func TestOnboardingHandler_ToggleGoal(t *testing.T) {
	t.Run("returns 200", func(t *testing.T) {
		var got string
		svc := &mockOnboardingService{
			toggleGoalFn: func(_ context.Context, sessionID, goal string) (*services.OnboardingState, error) {
				got = goal
				return defaultState(sessionID), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPost, "/onboarding/goals/retirement/toggle", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got != "retirement" {
			t.Errorf("expected retirement, got %s", got)
		}
	})

	t.Run("returns 400 on unknown goal", func(t *testing.T) {
		svc := &mockOnboardingService{
			toggleGoalFn: func(context.Context, string, string) (*services.OnboardingState, error) {
				return nil, apperrors.ErrInvalidGoal
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodPost, "/onboarding/goals/yacht/toggle", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_GOAL")
	})
}

func TestOnboardingHandler_FinancialSnapshot(t *testing.T) {
	t.Run("passes currency", func(t *testing.T) {
		svc := &mockOnboardingService{
			financialSnapshotFn: func(_ context.Context, _ string, currency string) (*services.FinancialSnapshot, error) {
				cur, _ := onboarding.LookupCurrency(currency)
				return &services.FinancialSnapshot{
					Currency:          cur,
					IncomeAndExpenses: []services.AmountLine{{Field: "monthlyIncome", Value: "12500", Display: "₵12,500"}},
				}, nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding/snapshot?currency=GHS", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["currency"].(map[string]interface{})["symbol"] != "₵" {
			t.Errorf("expected cedi symbol, got %v", result["currency"])
		}
	})

	t.Run("returns 400 on unsupported currency", func(t *testing.T) {
		svc := &mockOnboardingService{
			financialSnapshotFn: func(context.Context, string, string) (*services.FinancialSnapshot, error) {
				return nil, apperrors.ErrUnsupportedCurrency
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding/snapshot?currency=XYZ", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNSUPPORTED_CURRENCY")
	})
}

func TestOnboardingHandler_BookingSummary(t *testing.T) {
	svc := &mockOnboardingService{
		bookingSummaryFn: func(context.Context, string) (*services.BookingSummary, error) {
			return &services.BookingSummary{FirstName: "Ama", Name: "Ama Owusu", DurationMinutes: 60}, nil
		},
	}
	r := setupOnboardingRouter(NewOnboardingHandler(svc))

	rec := doRequest(r, http.MethodGet, "/onboarding/booking", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["name"] != "Ama Owusu" {
		t.Errorf("expected Ama Owusu, got %v", result["name"])
	}
}

// closeNotifyingRecorder lets gin's Stream run against a recorder.
type closeNotifyingRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func newStreamRecorder() *closeNotifyingRecorder {
	return &closeNotifyingRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
}

func (r *closeNotifyingRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestOnboardingHandler_Events(t *testing.T) {
	t.Run("streams initial state and changes", func(t *testing.T) {
		svc := &mockOnboardingService{
			subscribeFn: func(_ context.Context, sessionID string) (<-chan services.StateEvent, error) {
				ch := make(chan services.StateEvent, 2)
				ch <- services.StateEvent{
					Change: onboarding.Change{Kind: onboarding.ChangeStep, Step: 2},
					State:  *defaultState(sessionID),
				}
				ch <- services.StateEvent{
					Change: onboarding.Change{Kind: onboarding.ChangeReset},
					State:  *defaultState(sessionID),
				}
				close(ch)
				return ch, nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := newStreamRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/onboarding/events", http.NoBody))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		body := rec.Body.String()
		for _, event := range []string{"event:state", "event:step", "event:reset"} {
			if !strings.Contains(body, event) {
				t.Errorf("expected %q in stream, got:\n%s", event, body)
			}
		}
		if strings.Index(body, "event:state") > strings.Index(body, "event:step") {
			t.Errorf("expected initial state before changes, got:\n%s", body)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
			t.Errorf("expected event-stream content type, got %s", ct)
		}
	})

	t.Run("stops when client disconnects", func(t *testing.T) {
		svc := &mockOnboardingService{
			subscribeFn: func(context.Context, string) (<-chan services.StateEvent, error) {
				return make(chan services.StateEvent), nil
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		req := httptest.NewRequest(http.MethodGet, "/onboarding/events", http.NoBody).WithContext(ctx)
		rec := newStreamRecorder()

		done := make(chan struct{})
		go func() {
			r.ServeHTTP(rec, req)
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("stream did not end after the client went away")
		}
	})

	t.Run("returns 401 before streaming", func(t *testing.T) {
		svc := &mockOnboardingService{
			subscribeFn: func(context.Context, string) (<-chan services.StateEvent, error) {
				return nil, apperrors.ErrInvalidSession
			},
		}
		r := setupOnboardingRouter(NewOnboardingHandler(svc))

		rec := doRequest(r, http.MethodGet, "/onboarding/events", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
