package models

// Onboarding event actions.
const (
	EventStepCompleted = "step_completed"
	EventStepChanged   = "step_changed"
	EventReset         = "reset"
)

// OnboardingEvent records a progress change of an onboarding session.
type OnboardingEvent struct {
	Base
	SessionID string `gorm:"not null;index" json:"session_id"`
	Action    string `gorm:"not null" json:"action"`
	Step      int    `json:"step,omitempty"`
}
