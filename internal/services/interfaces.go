package services

import (
	"context"

	"celerey/internal/models"
	"celerey/internal/onboarding"
	"celerey/internal/pagination"
)

// OnboardingServicer defines the contract for the onboarding wizard. Every
// method operates on the store of one session.
type OnboardingServicer interface {
	BeginJourney(ctx context.Context, email string) (string, error)
	GetState(ctx context.Context, sessionID string) (*OnboardingState, error)
	Update(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error)
	SetStep(ctx context.Context, sessionID string, step int) (*OnboardingState, error)
	CompleteStep(ctx context.Context, sessionID string, step int) (*OnboardingState, error)
	Reset(ctx context.Context, sessionID string) (*OnboardingState, error)
	Navigate(ctx context.Context, sessionID, stepParam string) (*OnboardingState, error)

	SubmitPersonalInfo(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error)
	SubmitFinancialSnapshot(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error)
	SubmitGoals(ctx context.Context, sessionID string, patch onboarding.Patch) (*OnboardingState, error)

	AddAssetCountry(ctx context.Context, sessionID, country string) (*OnboardingState, error)
	RemoveAssetCountry(ctx context.Context, sessionID, country string) (*OnboardingState, error)
	ToggleGoal(ctx context.Context, sessionID, goal string) (*OnboardingState, error)
	CountrySuggestions(ctx context.Context, sessionID, query string) ([]string, error)

	FinancialSnapshot(ctx context.Context, sessionID, currency string) (*FinancialSnapshot, error)
	BookingSummary(ctx context.Context, sessionID string) (*BookingSummary, error)

	Subscribe(ctx context.Context, sessionID string) (<-chan StateEvent, error)
}

// ActivityServicer defines the contract for the onboarding activity journal.
type ActivityServicer interface {
	Attach(sessionID string, store *onboarding.Store)
	Record(sessionID, action string, step int)
	History(ctx context.Context, sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.OnboardingEvent], error)
}
