package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"celerey/internal/models"
)

// GormSlot keeps a slot as one row of the storage_slots table.
type GormSlot struct {
	db    *gorm.DB
	scope string
	key   string
}

// NewGormSlot returns the slot identified by scope and key.
func NewGormSlot(db *gorm.DB, scope, key string) *GormSlot {
	return &GormSlot{db: db, scope: scope, key: key}
}

// Load returns the stored value, or nil when the row does not exist.
func (s *GormSlot) Load(ctx context.Context) ([]byte, error) {
	var row models.StorageSlot
	err := s.db.WithContext(ctx).
		Where("scope = ? AND slot_key = ?", s.scope, s.key).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %s/%s: %w", s.scope, s.key, err)
	}
	return []byte(row.Value), nil
}

// Save inserts the row or replaces its value.
func (s *GormSlot) Save(ctx context.Context, data []byte) error {
	row := models.StorageSlot{
		Scope: s.scope,
		Key:   s.key,
		Value: datatypes.JSON(data),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save slot %s/%s: %w", s.scope, s.key, err)
	}
	return nil
}
