package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewModel mirrors the 'interviews' table. The bigserial ID doubles as
// the creation-order surrogate for the canonical newest-first listing.
type InterviewModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CompanyName   string     `gorm:"type:varchar(100);not null"`
	Position      string     `gorm:"type:varchar(50);not null"`
	InterviewDate *time.Time `gorm:"type:date"`
	Review        string     `gorm:"type:text"`
	Rating        int        `gorm:"type:smallint;not null;check:rating >= 1 AND rating <= 10"`
	Result        *string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Comments  []CommentModel  `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
	Favorites []FavoriteModel `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (InterviewModel) TableName() string {
	return "interviews"
}
