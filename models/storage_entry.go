package models

import (
	"time"

	"gorm.io/datatypes"
)

// StorageEntry is one key of the Postgres-backed persistent store.
type StorageEntry struct {
	Key       string         `gorm:"primaryKey;type:varchar(512)"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (StorageEntry) TableName() string {
	return "storage_entries"
}
