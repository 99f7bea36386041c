package model

import (
	"time"

	"github.com/google/uuid"
)

// CommentModel mirrors the 'comments' table. Rows are append-only and removed
// only through the interview deletion cascade.
type CommentModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	InterviewID int64     `gorm:"not null;index"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null"`
	Content     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
