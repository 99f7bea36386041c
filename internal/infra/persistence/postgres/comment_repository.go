package postgres

import (
	"context"

	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment and fills in its generated ID and timestamp.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInterviewNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListByInterviewID retrieves all comments of an interview ordered by creation
// time ascending, with author usernames resolved.
func (repo *commentRepository) ListByInterviewID(ctx context.Context, interviewID int64) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("interview_id = ?", interviewID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// DeleteByInterviewID removes all comments of an interview.
func (repo *commentRepository) DeleteByInterviewID(ctx context.Context, interviewID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// --- Mapper functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	authorUsername := ""
	if data.Author != nil {
		authorUsername = data.Author.Username
	}

	return &entity.Comment{
		ID:             data.ID,
		InterviewID:    data.InterviewID,
		AuthorID:       data.AuthorID,
		AuthorUsername: authorUsername,
		Content:        data.Content,
		CreatedAt:      data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:          data.ID,
		InterviewID: data.InterviewID,
		AuthorID:    data.AuthorID,
		Content:     data.Content,
	}
}
