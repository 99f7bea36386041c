package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"interviewlog/internal/domain/entity"
)

// newTestDB opens an isolated in-memory database carrying the production
// schema, so repository behavior is exercised against real SQL.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A fresh :memory: database appears per connection; pin the pool to one.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) uuid.UUID {
	t.Helper()

	user := &entity.User{
		Username: username,
		Email:    username + "@example.com",
		Tier:     entity.TierFree,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user, "irrelevant-hash"))

	return user.ID
}

func seedInterview(t *testing.T, db *gorm.DB, ownerID uuid.UUID, company string) int64 {
	t.Helper()

	interview := &entity.Interview{
		OwnerID:     ownerID,
		CompanyName: company,
		Position:    "Backend Engineer",
		Rating:      7,
	}
	require.NoError(t, NewInterviewRepository(db).Create(context.Background(), interview))

	return interview.ID
}
