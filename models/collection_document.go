package models

import (
	"time"

	"gorm.io/datatypes"
)

// CollectionDocument stores one whole collection (the same JSON array the
// file backend writes) in a single row keyed by collection name.
type CollectionDocument struct {
	Name      string         `gorm:"primaryKey;size:64" json:"name"`
	Document  datatypes.JSON `gorm:"column:document" json:"document"`
	UpdatedAt time.Time      `json:"updated_at"`
}
