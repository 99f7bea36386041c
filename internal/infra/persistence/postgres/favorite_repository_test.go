package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewlog/internal/domain/entity"
	"interviewlog/internal/domain/repository"
)

func TestFavoriteRepository_CreateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userID := seedUser(t, db, "carol")
	interviewID := seedInterview(t, db, userID, "Acme Corp")

	repo := NewFavoriteRepository(db)

	require.NoError(t, repo.Create(ctx, &entity.Favorite{UserID: userID, InterviewID: interviewID}))

	exists, err := repo.Exists(ctx, userID, interviewID)
	require.NoError(t, err)
	assert.True(t, exists)

	removed, err := repo.Delete(ctx, userID, interviewID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete(ctx, userID, interviewID)
	require.NoError(t, err)
	assert.False(t, removed)
}

// A duplicate insert must not poison the open transaction: the conflict is
// absorbed by the insert itself, the error is a plain sentinel, and the
// transaction still commits.
func TestFavoriteRepository_DuplicateInsertKeepsTransactionCommittable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	userID := seedUser(t, db, "dave")
	interviewID := seedInterview(t, db, userID, "Acme Corp")

	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		if err := favoriteRepo.Create(ctx, &entity.Favorite{UserID: userID, InterviewID: interviewID}); err != nil {
			return err
		}

		// Same pair again, as a toggle losing the race would see it.
		err := favoriteRepo.Create(ctx, &entity.Favorite{UserID: userID, InterviewID: interviewID})
		assert.ErrorIs(t, err, repository.ErrDuplicateFavorite)

		// Swallow the duplicate and let the transaction run to commit.
		return nil
	})
	require.NoError(t, err)

	exists, err := NewFavoriteRepository(db).Exists(ctx, userID, interviewID)
	require.NoError(t, err)
	assert.True(t, exists)

	var count int64
	require.NoError(t, db.Table("favorites").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
