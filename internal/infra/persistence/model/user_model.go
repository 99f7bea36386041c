// Package model contains the GORM-specific persistence structs.
// They mirror table layout and are mapped to pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are time-ordered v7 UUIDs
// generated by the repository at insert time.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"type:varchar(150);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Tier         string    `gorm:"type:varchar(20);not null;default:free"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Sessions   []SessionModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Interviews []InterviewModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
