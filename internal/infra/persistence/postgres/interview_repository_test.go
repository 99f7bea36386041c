package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewlog/internal/domain/repository"
)

func TestInterviewRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	ownerID := seedUser(t, db, "erin")
	first := seedInterview(t, db, ownerID, "First Corp")
	second := seedInterview(t, db, ownerID, "Second Corp")
	third := seedInterview(t, db, ownerID, "Third Corp")

	repo := NewInterviewRepository(db)

	interviews, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, interviews, 3)
	assert.Equal(t, []int64{third, second, first}, []int64{interviews[0].ID, interviews[1].ID, interviews[2].ID})

	page, err := repo.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, second, page[0].ID)
	assert.Equal(t, first, page[1].ID)
}

func TestInterviewRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := NewInterviewRepository(db).FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, repository.ErrInterviewNotFound)
}
