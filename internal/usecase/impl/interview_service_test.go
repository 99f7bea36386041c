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

func validFields() usecase.InterviewFields {
	return usecase.InterviewFields{
		CompanyName: "Acme Corp",
		Position:    "Backend Engineer",
		Review:      "Three rounds, fair questions.",
		Rating:      7,
		Result:      "offer",
	}
}

func newInterviewService(
	txManager repository.TransactionManager,
	interviewRepo repository.InterviewRepository,
	commentRepo repository.CommentRepository,
	favoriteRepo repository.FavoriteRepository,
) usecase.InterviewUsecase {
	return NewInterviewService(InterviewServiceParams{
		TxManager:     txManager,
		InterviewRepo: interviewRepo,
		CommentRepo:   commentRepo,
		FavoriteRepo:  favoriteRepo,
		Logger:        slog.Default(),
	})
}

func TestInterviewService_Create_BindsOwner(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	ownerID := uuid.New()

	interviewRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Interview")).
		RunAndReturn(func(_ context.Context, interview *entity.Interview) error {
			assert.Equal(t, ownerID, interview.OwnerID)
			interview.ID = 1
			return nil
		})

	interview, err := service.Create(ctx, ownerID, validFields())
	require.NoError(t, err)
	assert.Equal(t, ownerID, interview.OwnerID)
	assert.Equal(t, int64(1), interview.ID)
}

func TestInterviewService_Create_RejectsBadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.InterviewFields)
		field  string
	}{
		{name: "rating too low", mutate: func(f *usecase.InterviewFields) { f.Rating = 0 }, field: "rating"},
		{name: "rating too high", mutate: func(f *usecase.InterviewFields) { f.Rating = 11 }, field: "rating"},
		{name: "empty company", mutate: func(f *usecase.InterviewFields) { f.CompanyName = "" }, field: "company_name"},
		{name: "short company", mutate: func(f *usecase.InterviewFields) { f.CompanyName = "ab" }, field: "company_name"},
		{name: "blank company", mutate: func(f *usecase.InterviewFields) { f.CompanyName = "   " }, field: "company_name"},
		{name: "empty position", mutate: func(f *usecase.InterviewFields) { f.Position = "" }, field: "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interviewRepo := mockRepo.NewMockInterviewRepository(t)
			commentRepo := mockRepo.NewMockCommentRepository(t)
			favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txManager := mockRepo.NewMockTransactionManager(t)

			service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

			fields := validFields()
			tt.mutate(&fields)

			interview, err := service.Create(context.Background(), uuid.New(), fields)
			require.Error(t, err)
			assert.Nil(t, interview)

			var violations *domainerrors.FieldViolations
			require.ErrorAs(t, err, &violations)
			assert.Contains(t, violations.Fields(), tt.field)
		})
	}
}

func TestInterviewService_RatingBoundsAccepted(t *testing.T) {
	for _, rating := range []int{1, 10} {
		interviewRepo := mockRepo.NewMockInterviewRepository(t)
		commentRepo := mockRepo.NewMockCommentRepository(t)
		favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
		txManager := mockRepo.NewMockTransactionManager(t)

		service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

		interviewRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Interview")).
			Return(nil)

		fields := validFields()
		fields.Rating = rating

		_, err := service.Create(context.Background(), uuid.New(), fields)
		require.NoError(t, err, "rating %d should be accepted", rating)
	}
}

func TestInterviewService_Get_ReturnsCommentsAndFavoriteState(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	viewerID := uuid.New()
	interview := &entity.Interview{ID: 5, OwnerID: uuid.New(), CompanyName: "Acme Corp"}
	comments := []*entity.Comment{{ID: 1, InterviewID: 5, Content: "Thanks for sharing"}}

	interviewRepo.EXPECT().FindByID(ctx, int64(5)).Return(interview, nil)
	commentRepo.EXPECT().ListByInterviewID(ctx, int64(5)).Return(comments, nil)
	favoriteRepo.EXPECT().Exists(ctx, viewerID, int64(5)).Return(true, nil)

	detail, err := service.Get(ctx, 5, viewerID)
	require.NoError(t, err)
	assert.Equal(t, interview, detail.Interview)
	assert.Equal(t, comments, detail.Comments)
	assert.True(t, detail.Favorited)
}

func TestInterviewService_Get_AnonymousViewerSkipsFavoriteLookup(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()

	interviewRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Interview{ID: 5}, nil)
	commentRepo.EXPECT().ListByInterviewID(ctx, int64(5)).Return(nil, nil)

	detail, err := service.Get(ctx, 5, uuid.Nil)
	require.NoError(t, err)
	assert.False(t, detail.Favorited)
}

func TestInterviewService_Get_NotFound(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	interviewRepo.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrInterviewNotFound)

	detail, err := service.Get(context.Background(), 404, uuid.Nil)
	require.Error(t, err)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrInterviewNotFound)
}

func TestInterviewService_List_PassesThroughOrder(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	newestFirst := []*entity.Interview{{ID: 3}, {ID: 2}, {ID: 1}}

	interviewRepo.EXPECT().List(ctx, 20, 0).Return(newestFirst, nil)

	interviews, err := service.List(ctx, usecase.ListInterviewsInput{Limit: 20, Offset: 0})
	require.NoError(t, err)
	require.Len(t, interviews, 3)
	assert.Equal(t, int64(3), interviews[0].ID)
	assert.Equal(t, int64(1), interviews[2].ID)
}

func TestInterviewService_Update_NonOwnerForbidden(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().InterviewRepo().Return(interviewRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	ownerID := uuid.New()
	intruderID := uuid.New()

	interviewRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Interview{ID: 5, OwnerID: ownerID}, nil)

	updated, err := service.Update(ctx, 5, intruderID, validFields())
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestInterviewService_Update_OwnerSucceedsAndKeepsOwner(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().InterviewRepo().Return(interviewRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	ownerID := uuid.New()

	interviewRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Interview{ID: 5, OwnerID: ownerID, CompanyName: "Old Name", Rating: 3}, nil)
	interviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Interview")).
		RunAndReturn(func(_ context.Context, interview *entity.Interview) error {
			assert.Equal(t, ownerID, interview.OwnerID)
			assert.Equal(t, "Acme Corp", interview.CompanyName)
			assert.Equal(t, 7, interview.Rating)
			return nil
		})

	updated, err := service.Update(ctx, 5, ownerID, validFields())
	require.NoError(t, err)
	assert.Equal(t, ownerID, updated.OwnerID)
}

func TestInterviewService_Update_NotFound(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().InterviewRepo().Return(interviewRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	interviewRepo.EXPECT().
		FindByID(mock.Anything, int64(404)).
		Return(nil, repository.ErrInterviewNotFound)

	updated, err := service.Update(context.Background(), 404, uuid.New(), validFields())
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInterviewNotFound)
}

func TestInterviewService_Delete_CascadesInsideTransaction(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().InterviewRepo().Return(interviewRepo).Maybe()
	factory.EXPECT().CommentRepo().Return(commentRepo).Maybe()
	factory.EXPECT().FavoriteRepo().Return(favoriteRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()
	ownerID := uuid.New()

	interviewRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Interview{ID: 5, OwnerID: ownerID}, nil)
	commentRepo.EXPECT().DeleteByInterviewID(ctx, int64(5)).Return(nil)
	favoriteRepo.EXPECT().DeleteByInterviewID(ctx, int64(5)).Return(nil)
	interviewRepo.EXPECT().Delete(ctx, int64(5)).Return(nil)

	require.NoError(t, service.Delete(ctx, 5, ownerID))
}

func TestInterviewService_Delete_NonOwnerForbidden(t *testing.T) {
	interviewRepo := mockRepo.NewMockInterviewRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().InterviewRepo().Return(interviewRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newInterviewService(txManager, interviewRepo, commentRepo, favoriteRepo)

	ctx := context.Background()

	interviewRepo.EXPECT().
		FindByID(ctx, int64(5)).
		Return(&entity.Interview{ID: 5, OwnerID: uuid.New()}, nil)

	err := service.Delete(ctx, 5, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}
