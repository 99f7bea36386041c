package postgres

import (
	"context"

	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoriteRepository implements the domain FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts the (user, interview) pair. The insert carries ON CONFLICT
// DO NOTHING on the composite primary key: a concurrent duplicate affects
// zero rows and is reported as ErrDuplicateFavorite without raising a
// database error, so the surrounding transaction stays committable.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		UserID:      favorite.UserID,
		InterviewID: favorite.InterviewID,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "interview_id"}},
			DoNothing: true,
		}).
		Create(favoriteM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrInterviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to create favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDuplicateFavorite
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the pair and reports whether a row was actually removed.
func (repo *favoriteRepository) Delete(ctx context.Context, userID uuid.UUID, interviewID int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND interview_id = ?", userID, interviewID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return false, errors.WithStack(result.Error)
	}

	return result.RowsAffected > 0, nil
}

// Exists reports whether the pair is present.
func (repo *favoriteRepository) Exists(ctx context.Context, userID uuid.UUID, interviewID int64) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND interview_id = ?", userID, interviewID).
		Count(&count).Error
	if err != nil {
		return false, errors.WithStack(err)
	}

	return count > 0, nil
}

// DeleteByInterviewID removes all favorites referencing an interview.
func (repo *favoriteRepository) DeleteByInterviewID(ctx context.Context, interviewID int64) error {
	if err := repo.db.WithContext(ctx).
		Where("interview_id = ?", interviewID).
		Delete(&model.FavoriteModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}
