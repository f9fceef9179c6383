package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"celerey/internal/models"
	"celerey/internal/onboarding"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewSessionID returns a unique session identifier.
func NewSessionID() string {
	return fmt.Sprintf("session-%d", nextID())
}

// PersonalInfoPatch returns a patch that satisfies the personal info screen.
func PersonalInfoPatch() onboarding.Patch {
	return onboarding.Patch{
		FirstName:     onboarding.Ptr("Ama"),
		LastName:      onboarding.Ptr("Owusu"),
		Email:         onboarding.Ptr("ama@x.com"),
		Phone:         onboarding.Ptr("+233555"),
		TimeZone:      onboarding.Ptr("Accra, Ghana"),
		DateOfBirth:   onboarding.Ptr("1990-01-01"),
		Citizenship:   onboarding.Ptr("Ghanaian"),
		Gender:        onboarding.Ptr(onboarding.GenderFemale),
		MaritalStatus: onboarding.Ptr(onboarding.MaritalSingle),
		Dependents:    onboarding.Ptr(onboarding.Dependents(0)),
		Agree:         onboarding.Ptr(true),
	}
}

// CreateTestSlot stores rec in the slot of scope.
func CreateTestSlot(t *testing.T, db *gorm.DB, scope string, rec onboarding.Record) *models.StorageSlot {
	t.Helper()

	raw, err := onboarding.Encode(rec)
	if err != nil {
		t.Fatalf("failed to encode record: %v", err)
	}

	slot := &models.StorageSlot{
		Scope: scope,
		Key:   onboarding.StorageKey,
		Value: datatypes.JSON(raw),
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("failed to create test slot: %v", err)
	}
	return slot
}

// CreateTestEvent records an onboarding event for sessionID.
func CreateTestEvent(t *testing.T, db *gorm.DB, sessionID, action string, step int) *models.OnboardingEvent {
	t.Helper()

	event := &models.OnboardingEvent{
		SessionID: sessionID,
		Action:    action,
		Step:      step,
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}
