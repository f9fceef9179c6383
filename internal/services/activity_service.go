package services

import (
	"context"

	"gorm.io/gorm"

	apperrors "celerey/internal/errors"
	"celerey/internal/logger"
	"celerey/internal/models"
	"celerey/internal/onboarding"
	"celerey/internal/pagination"
)

// activityService records the progress of onboarding sessions.
type activityService struct {
	db *gorm.DB
}

// NewActivityService creates a new ActivityServicer.
func NewActivityService(db *gorm.DB) ActivityServicer {
	return &activityService{db: db}
}

// Attach starts journaling the progress changes of store. It has the shape
// of an onboarding.OpenHook.
func (s *activityService) Attach(sessionID string, store *onboarding.Store) {
	store.Subscribe(func(change onboarding.Change, _ onboarding.Record) {
		switch change.Kind {
		case onboarding.ChangeComplete:
			s.Record(sessionID, models.EventStepCompleted, change.Step)
		case onboarding.ChangeStep:
			s.Record(sessionID, models.EventStepChanged, change.Step)
		case onboarding.ChangeReset:
			s.Record(sessionID, models.EventReset, 0)
		}
	})
}

// Record stores an event. Errors are logged but never propagate
// to avoid disrupting the main operation.
func (s *activityService) Record(sessionID, action string, step int) {
	entry := &models.OnboardingEvent{
		SessionID: sessionID,
		Action:    action,
		Step:      step,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to record onboarding event",
			"error", err,
			"session_id", sessionID,
			"action", action,
			"step", step,
		)
	}
}

// History lists the events of a session, oldest first unless the page asks
// for newest first.
func (s *activityService) History(ctx context.Context, sessionID string, page pagination.PageRequest) (*pagination.PageResponse[models.OnboardingEvent], error) {
	page.Defaults()

	query := s.db.WithContext(ctx).Model(&models.OnboardingEvent{}).Where("session_id = ?", sessionID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var events []models.OnboardingEvent
	if err := query.Scopes(pagination.Chronological(page), pagination.Paginate(page)).
		Find(&events).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(events, page.Page, page.PageSize, total)
	return &resp, nil
}
