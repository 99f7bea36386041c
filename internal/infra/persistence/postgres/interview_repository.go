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

// interviewRepository implements the domain InterviewRepository interface using GORM.
type interviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository is the constructor for interviewRepository.
func NewInterviewRepository(db *gorm.DB) repository.InterviewRepository {
	return &interviewRepository{db: db}
}

// Create persists a new interview and fills in its generated ID and timestamps.
func (repo *interviewRepository) Create(ctx context.Context, interview *entity.Interview) error {
	interviewM := fromInterviewDomain(interview)

	if err := repo.db.WithContext(ctx).Create(interviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}
		if isCheckConstraintViolation(err) {
			// The usecase validates first; the DB check is the backstop.
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create interview")
	}

	interview.ID = interviewM.ID
	interview.CreatedAt = interviewM.CreatedAt
	interview.UpdatedAt = interviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single interview by ID.
func (repo *interviewRepository) FindByID(ctx context.Context, id int64) (*entity.Interview, error) {
	var interviewM model.InterviewModel
	if err := repo.db.WithContext(ctx).First(&interviewM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInterviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find interview by id")
	}

	return toInterviewDomain(&interviewM), nil
}

// List retrieves interviews ordered by descending ID (newest first).
func (repo *interviewRepository) List(ctx context.Context, limit, offset int) ([]*entity.Interview, error) {
	query := repo.db.WithContext(ctx).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var interviewModels []*model.InterviewModel
	if err := query.Find(&interviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interviews")
	}

	interviews := make([]*entity.Interview, 0, len(interviewModels))
	for _, interviewM := range interviewModels {
		interviews = append(interviews, toInterviewDomain(interviewM))
	}

	return interviews, nil
}

// Update persists the mutable fields of an existing interview.
// The owner binding is deliberately excluded from the column list.
func (repo *interviewRepository) Update(ctx context.Context, interview *entity.Interview) error {
	interviewM := fromInterviewDomain(interview)

	result := repo.db.WithContext(ctx).
		Model(&model.InterviewModel{}).
		Where("id = ?", interview.ID).
		Select("company_name", "position", "interview_date", "review", "rating", "result").
		Updates(interviewM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating out of range")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update interview")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInterviewNotFound
	}

	return nil
}

// Delete hard-deletes an interview.
func (repo *interviewRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.InterviewModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrInterviewNotFound
	}

	return nil
}

// --- Mapper functions ---

func toInterviewDomain(data *model.InterviewModel) *entity.Interview {
	if data == nil {
		return nil
	}

	result := ""
	if data.Result != nil {
		result = *data.Result
	}

	return &entity.Interview{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		CompanyName:   data.CompanyName,
		Position:      data.Position,
		InterviewDate: data.InterviewDate,
		Review:        data.Review,
		Rating:        data.Rating,
		Result:        result,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromInterviewDomain(data *entity.Interview) *model.InterviewModel {
	if data == nil {
		return nil
	}

	var result *string
	if data.Result != "" {
		value := data.Result
		result = &value
	}

	return &model.InterviewModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		CompanyName:   data.CompanyName,
		Position:      data.Position,
		InterviewDate: data.InterviewDate,
		Review:        data.Review,
		Rating:        data.Rating,
		Result:        result,
	}
}
