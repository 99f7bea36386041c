package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	mockRepo "interviewlog/internal/mocks/repository"
	"interviewlog/internal/usecase"
)

func newCommentService(
	interviewRepo repository.InterviewRepository,
	commentRepo repository.CommentRepository,
) usecase.CommentUsecase {
	return NewCommentService(CommentServiceParams{
		InterviewRepo: interviewRepo,
		CommentRepo:   commentRepo,
		Logger:        slog.Default(),
	})
}

func TestCommentService_Add_Success(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := newCommentService(interviewRepo, commentRepo)

	ctx := context.Background()
	authorID := uuid.New()

	interviewRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Interview{ID: 7}, nil)
	commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		RunAndReturn(func(_ context.Context, comment *entity.Comment) error {
			assert.Equal(t, int64(7), comment.InterviewID)
			assert.Equal(t, authorID, comment.AuthorID)
			comment.ID = 1
			return nil
		})

	comment, err := service.Add(ctx, 7, authorID, "Great writeup, thanks!")
	require.NoError(t, err)
	assert.Equal(t, int64(1), comment.ID)
	assert.Equal(t, "Great writeup, thanks!", comment.Content)
}

func TestCommentService_Add_EmptyContent(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := newCommentService(interviewRepo, commentRepo)

	for _, content := range []string{"", "   ", "\n\t"} {
		comment, err := service.Add(context.Background(), 7, uuid.New(), content)
		require.Error(t, err)
		assert.Nil(t, comment)

		var violations *domainerrors.FieldViolations
		require.ErrorAs(t, err, &violations)
		assert.Contains(t, violations.Fields(), "content")
	}
}

func TestCommentService_Add_InterviewMissing(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := newCommentService(interviewRepo, commentRepo)

	interviewRepo.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrInterviewNotFound)

	comment, err := service.Add(context.Background(), 404, uuid.New(), "hello")
	require.Error(t, err)
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, domainerrors.ErrInterviewNotFound)
}

func TestCommentService_List(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)

	service := newCommentService(interviewRepo, commentRepo)

	ctx := context.Background()
	oldestFirst := []*entity.Comment{{ID: 1}, {ID: 2}}

	commentRepo.EXPECT().ListByInterviewID(ctx, int64(7)).Return(oldestFirst, nil)

	comments, err := service.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, oldestFirst, comments)
}
