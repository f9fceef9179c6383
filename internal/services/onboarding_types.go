package services

import "celerey/internal/onboarding"

// OnboardingState is a session's record together with the progress shown
// above the wizard.
type OnboardingState struct {
	SessionID string            `json:"session_id"`
	Hydrated  bool              `json:"hydrated"`
	Record    onboarding.Record `json:"record"`
	Progress  Progress          `json:"progress"`
}

// Progress describes the step indicator.
type Progress struct {
	CurrentStep int            `json:"current_step"`
	Percent     int            `json:"percent"`
	Steps       []ProgressStep `json:"steps"`
}

// ProgressStep is one bubble of the step indicator. Active marks steps at or
// before the current one.
type ProgressStep struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Active    bool   `json:"active"`
	Completed bool   `json:"completed"`
}

// AmountLine is one formatted amount of the financial snapshot.
type AmountLine struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	Display string `json:"display"`
}

// FinancialSnapshot is the income & expenses screen rendered in a display
// currency. The currency never changes the stored amounts.
type FinancialSnapshot struct {
	Currency            onboarding.Currency     `json:"currency"`
	PrimaryIncomeSource onboarding.IncomeSource `json:"primary_income_source,omitempty"`
	IncomeAndExpenses   []AmountLine            `json:"income_and_expenses"`
	Assets              []AmountLine            `json:"assets"`
	Liabilities         []AmountLine            `json:"liabilities"`
	AssetCountries      []string                `json:"asset_countries"`
}

// Scheduling configures the third-party calendar widget of the booking screen.
type Scheduling struct {
	URL   string `json:"url"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// BookingSummary is what the booking screen shows next to the calendar.
type BookingSummary struct {
	FirstName       string     `json:"first_name"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	TimeZone        string     `json:"time_zone"`
	DurationMinutes int        `json:"duration_minutes"`
	Format          string     `json:"format"`
	Completed       bool       `json:"completed"`
	Scheduling      Scheduling `json:"scheduling"`
}

// StateEvent is delivered to subscribers after every change of a session.
type StateEvent struct {
	Change onboarding.Change `json:"change"`
	State  OnboardingState   `json:"state"`
}
