package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "interviewlog/internal/delivery/context"
	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/usecase"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	interviewRepo repository.InterviewRepository
	commentRepo   repository.CommentRepository
	logger        *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	InterviewRepo repository.InterviewRepository
	CommentRepo   repository.CommentRepository
	Logger        *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		interviewRepo: params.InterviewRepo,
		commentRepo:   params.CommentRepo,
		logger:        params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add attaches a comment to an existing interview.
func (srv *commentService) Add(ctx context.Context, interviewID int64, authorID uuid.UUID, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domainerrors.NewFieldViolations().Add("content", "留言內容不可為空")
	}

	if _, err := srv.interviewRepo.FindByID(ctx, interviewID); err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return nil, domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		srv.log(ctx).Error("Failed to load interview for comment", slog.Int64("interviewID", interviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load interview for comment")
	}

	comment := &entity.Comment{
		InterviewID: interviewID,
		AuthorID:    authorID,
		Content:     content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		// The interview may have been deleted between the check and the insert.
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return nil, domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		srv.log(ctx).Error("Failed to create comment", slog.Int64("interviewID", interviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Int64("interviewID", interviewID), slog.Int64("commentID", comment.ID))

	return comment, nil
}

// List returns the comments of an interview oldest first.
func (srv *commentService) List(ctx context.Context, interviewID int64) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByInterviewID(ctx, interviewID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments", slog.Int64("interviewID", interviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}
