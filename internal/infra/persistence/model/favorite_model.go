package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite primary key is
// the uniqueness constraint that makes the toggle race-safe.
type FavoriteModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterviewID int64     `gorm:"primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
