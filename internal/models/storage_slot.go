package models

import "gorm.io/datatypes"

// StorageSlot is one persisted key-value entry. Scope separates sessions, so
// every session owns a slot under the same key.
type StorageSlot struct {
	Base
	Scope string         `gorm:"not null;uniqueIndex:idx_storage_slots_scope_key" json:"scope"`
	Key   string         `gorm:"column:slot_key;not null;uniqueIndex:idx_storage_slots_scope_key" json:"key"`
	Value datatypes.JSON `gorm:"not null" json:"value"`
}
