package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	apperrors "celerey/internal/errors"
	"celerey/internal/logger"
	"celerey/internal/onboarding"
	"celerey/internal/uuid"
	"celerey/internal/validator"
)

const (
	emptyValue        = "—"
	sessionMinutes    = 60
	sessionFormat     = "Video call"
	subscriberBacklog = 16
)

// onboardingService handles the onboarding wizard on top of the session stores.
type onboardingService struct {
	registry   *onboarding.Registry
	scheduling Scheduling
}

// NewOnboardingService creates a new OnboardingServicer.
func NewOnboardingService(registry *onboarding.Registry, scheduling Scheduling) OnboardingServicer {
	return &onboardingService{registry: registry, scheduling: scheduling}
}

// BeginJourney starts a session from the email captured on the landing page.
func (s *onboardingService) BeginJourney(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperrors.WithFields(apperrors.ErrValidation, map[string]string{"email": "Email is required"})
	}

	sessionID := uuid.New()
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return "", err
	}
	store.Update(onboarding.Patch{Email: &email})

	logger.ForSession(sessionID).Info("onboarding session started")
	return sessionID, nil
}

// GetState returns the session's record and progress.
func (s *onboardingService) GetState(ctx context.Context, sessionID string) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return stateOf(sessionID, store), nil
}

// Update merges a partial update into the record.
func (s *onboardingService) Update(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.Update(patch)
	return stateOf(sessionID, store), nil
}

// SetStep moves the wizard to step.
func (s *onboardingService) SetStep(ctx context.Context, sessionID string, step int) (*OnboardingState, error) {
	if !onboarding.ValidStep(step) {
		return nil, apperrors.ErrInvalidStep
	}
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.SetStep(step)
	return stateOf(sessionID, store), nil
}

// CompleteStep marks step as completed.
func (s *onboardingService) CompleteStep(ctx context.Context, sessionID string, step int) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.CompleteStep(step)
	return stateOf(sessionID, store), nil
}

// Reset discards the session's record.
func (s *onboardingService) Reset(ctx context.Context, sessionID string) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.Reset()
	logger.ForSession(sessionID).Info("onboarding session reset")
	return stateOf(sessionID, store), nil
}

// Navigate applies the step named in a URL. A missing value means step 1.
// Values that are not a step leave the store untouched.
func (s *onboardingService) Navigate(ctx context.Context, sessionID, stepParam string) (*OnboardingState, error) {
	step := onboarding.FirstStep
	if stepParam != "" {
		n, err := strconv.Atoi(strings.TrimSpace(stepParam))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInvalidStep, err)
		}
		step = n
	}
	return s.SetStep(ctx, sessionID, step)
}

// SubmitPersonalInfo merges the personal info screen and advances to the
// financial snapshot when the screen is complete.
func (s *onboardingService) SubmitPersonalInfo(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error) {
	return s.submit(ctx, sessionID, onboarding.StepPersonalInfo, patch)
}

// SubmitFinancialSnapshot merges the income & expenses screen and advances to
// goals & risk when the screen is complete. Amounts are stored as digits only.
func (s *onboardingService) SubmitFinancialSnapshot(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error) {
	sanitizeAmounts(&patch)
	return s.submit(ctx, sessionID, onboarding.StepFinancialSnapshot, patch)
}

// SubmitGoals merges the goals & risk screen and completes the wizard.
func (s *onboardingService) SubmitGoals(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error) {
	return s.submit(ctx, sessionID, onboarding.StepGoalsAndRisk, patch)
}

func (s *onboardingService) submit(ctx context.Context, sessionID string, step int, patch onboarding.Patch) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	err = store.Submit(step, patch, func(rec onboarding.Record) error {
		return validator.ValidateStep(step, rec)
	})
	if err != nil {
		if errors.Is(err, onboarding.ErrStepOutOfRange) {
			return nil, apperrors.Wrap(apperrors.ErrInvalidStep, err)
		}
		fields := validator.FieldErrors(err)
		if fields == nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil, apperrors.WithFields(apperrors.ErrValidation, fields)
	}

	logger.ForSession(sessionID).Infow("onboarding step submitted", "step", step)
	return stateOf(sessionID, store), nil
}

// AddAssetCountry adds a country to the asset locations.
func (s *onboardingService) AddAssetCountry(ctx context.Context, sessionID, country string) (*OnboardingState, error) {
	if strings.TrimSpace(country) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "country is required")
	}
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.AddAssetCountry(country)
	return stateOf(sessionID, store), nil
}

// RemoveAssetCountry removes a country from the asset locations.
func (s *onboardingService) RemoveAssetCountry(ctx context.Context, sessionID, country string) (*OnboardingState, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.RemoveAssetCountry(country)
	return stateOf(sessionID, store), nil
}

// ToggleGoal selects or deselects a financial goal.
func (s *onboardingService) ToggleGoal(ctx context.Context, sessionID, goal string) (*OnboardingState, error) {
	if !onboarding.ValidFinancialGoal(goal) {
		return nil, apperrors.ErrInvalidGoal
	}
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	store.ToggleGoal(goal)
	return stateOf(sessionID, store), nil
}

// CountrySuggestions filters the suggestion list by query, leaving out the
// countries the session already selected.
func (s *onboardingService) CountrySuggestions(ctx context.Context, sessionID, query string) ([]string, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return onboarding.SuggestCountries(strings.TrimSpace(query), store.Record().AssetCountries), nil
}

// FinancialSnapshot renders the session's amounts in a display currency.
func (s *onboardingService) FinancialSnapshot(ctx context.Context, sessionID, currency string) (*FinancialSnapshot, error) {
	if currency == "" {
		currency = onboarding.DefaultCurrency
	}
	cur, ok := onboarding.LookupCurrency(strings.ToUpper(currency))
	if !ok {
		return nil, apperrors.ErrUnsupportedCurrency
	}

	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec := store.Record()

	line := func(field, label, value string) AmountLine {
		l := AmountLine{Field: field, Label: label, Value: value}
		if value != "" {
			l.Display = cur.Symbol + onboarding.FormatAmount(value)
		}
		return l
	}

	countries := rec.AssetCountries
	if countries == nil {
		countries = []string{}
	}

	return &FinancialSnapshot{
		Currency:            cur,
		PrimaryIncomeSource: rec.PrimaryIncomeSource,
		IncomeAndExpenses: []AmountLine{
			line("monthlyIncome", "Monthly Income (after tax)", rec.MonthlyIncome),
			line("monthlyExpenses", "Monthly Expenses", rec.MonthlyExpenses),
		},
		Assets: []AmountLine{
			line("cashSavings", "Cash & Savings Accounts", rec.CashSavings),
			line("investmentPortfolio", "Investment Portfolio (Stocks, Bonds, Funds)", rec.InvestmentPortfolio),
			line("retirementAccounts", "Retirement Accounts (Pension, 401k, etc.)", rec.RetirementAccounts),
			line("realEstateValue", "Real Estate Value (Primary & Investment)", rec.RealEstateValue),
			line("otherAssets", "Other Assets (Business, Vehicles, Collectibles)", rec.OtherAssets),
		},
		Liabilities: []AmountLine{
			line("mortgageDebt", "Mortgage Debt", rec.MortgageDebt),
			line("studentLoans", "Student Loans", rec.StudentLoans),
			line("creditCardDebt", "Credit Card Debt", rec.CreditCardDebt),
			line("personalLoans", "Personal/Other Loans", rec.PersonalLoans),
			line("otherLiabilities", "Other Liabilities", rec.OtherLiabilities),
		},
		AssetCountries: countries,
	}, nil
}

// BookingSummary returns the contact details shown on the booking screen.
func (s *onboardingService) BookingSummary(ctx context.Context, sessionID string) (*BookingSummary, error) {
	store, err := s.open(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	rec := store.Record()

	return &BookingSummary{
		FirstName:       rec.FirstName,
		Name:            orDash(rec.FullName()),
		Email:           orDash(rec.Email),
		Phone:           orDash(rec.Phone),
		TimeZone:        orDash(rec.TimeZone),
		DurationMinutes: sessionMinutes,
		Format:          sessionFormat,
		Completed:       rec.HasCompleted(onboarding.LastStep),
		Scheduling:      s.scheduling,
	}, nil
}

// Subscribe streams the session's changes until ctx ends. Slow consumers
// lose the oldest pending events; every event carries the full state.
func (s *onboardingService) Subscribe(ctx context.Context, sessionID string) (<-chan StateEvent, error) {
	store, release, err := s.registry.Hold(ctx, sessionID)
	if err != nil {
		return nil, openError(err)
	}

	sub := &subscription{ch: make(chan StateEvent, subscriberBacklog)}
	unsubscribe := store.Subscribe(func(change onboarding.Change, rec onboarding.Record) {
		sub.send(StateEvent{
			Change: change,
			State:  buildState(sessionID, true, rec),
		})
	})

	go func() {
		<-ctx.Done()
		unsubscribe()
		release()
		sub.close()
	}()

	return sub.ch, nil
}

func (s *onboardingService) open(ctx context.Context, sessionID string) (*onboarding.Store, error) {
	store, err := s.registry.Open(ctx, sessionID)
	if err != nil {
		return nil, openError(err)
	}
	return store, nil
}

func openError(err error) error {
	if errors.Is(err, onboarding.ErrInvalidSession) {
		return apperrors.Wrap(apperrors.ErrInvalidSession, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}

// subscription guards a channel that listeners write to and the context
// watcher closes.
type subscription struct {
	mu     sync.Mutex
	ch     chan StateEvent
	closed bool
}

func (s *subscription) send(ev StateEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	for {
		select {
		case s.ch <- ev:
			return
		default:
		}
		select {
		case <-s.ch:
		default:
		}
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func stateOf(sessionID string, store *onboarding.Store) *OnboardingState {
	st := buildState(sessionID, store.Hydrated(), store.Record())
	return &st
}

func buildState(sessionID string, hydrated bool, rec onboarding.Record) OnboardingState {
	steps := make([]ProgressStep, len(onboarding.Steps))
	for i, s := range onboarding.Steps {
		steps[i] = ProgressStep{
			Number:    s.Number,
			Label:     s.Label,
			Active:    rec.CurrentStep >= s.Number,
			Completed: rec.HasCompleted(s.Number),
		}
	}

	percent := 0
	if n := len(onboarding.Steps); n > 1 {
		percent = (rec.CurrentStep - 1) * 100 / (n - 1)
	}

	return OnboardingState{
		SessionID: sessionID,
		Hydrated:  hydrated,
		Record:    rec,
		Progress: Progress{
			CurrentStep: rec.CurrentStep,
			Percent:     percent,
			Steps:       steps,
		},
	}
}

func sanitizeAmounts(p *onboarding.Patch) {
	for _, field := range []**string{
		&p.MonthlyIncome, &p.MonthlyExpenses,
		&p.CashSavings, &p.InvestmentPortfolio, &p.RetirementAccounts, &p.RealEstateValue, &p.OtherAssets,
		&p.MortgageDebt, &p.StudentLoans, &p.CreditCardDebt, &p.PersonalLoans, &p.OtherLiabilities,
	} {
		if *field != nil {
			*field = onboarding.Ptr(onboarding.SanitizeAmount(**field))
		}
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyValue
	}
	return s
}
