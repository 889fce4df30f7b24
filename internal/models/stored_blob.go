package models

import "time"

// StoredBlob is one JSON document of the per-user key/value store.
type StoredBlob struct {
	Key       string    `gorm:"primaryKey;size:320" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
