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

const companyNameMinLength = 3

// interviewService implements the InterviewUsecase interface.
type interviewService struct {
	txManager     repository.TransactionManager
	interviewRepo repository.InterviewRepository
	commentRepo   repository.CommentRepository
	favoriteRepo  repository.FavoriteRepository
	logger        *slog.Logger
}

// InterviewServiceParams holds dependencies for interviewService, injected by Fx.
type InterviewServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	InterviewRepo repository.InterviewRepository
	CommentRepo   repository.CommentRepository
	FavoriteRepo  repository.FavoriteRepository
	Logger        *slog.Logger
}

// NewInterviewService is the constructor for interviewService.
func NewInterviewService(params InterviewServiceParams) usecase.InterviewUsecase {
	return &interviewService{
		txManager:     params.TxManager,
		interviewRepo: params.InterviewRepo,
		commentRepo:   params.CommentRepo,
		favoriteRepo:  params.FavoriteRepo,
		logger:        params.Logger,
	}
}

func (srv *interviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new interview record bound to its owner.
func (srv *interviewService) Create(ctx context.Context, ownerID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error) {
	if err := validateInterviewFields(fields); err != nil {
		srv.log(ctx).Warn("Interview input rejected", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	interview := &entity.Interview{
		OwnerID:       ownerID,
		CompanyName:   strings.TrimSpace(fields.CompanyName),
		Position:      strings.TrimSpace(fields.Position),
		InterviewDate: fields.InterviewDate,
		Review:        fields.Review,
		Rating:        fields.Rating,
		Result:        fields.Result,
	}

	if err := srv.interviewRepo.Create(ctx, interview); err != nil {
		srv.log(ctx).Error("Failed to create interview", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create interview")
	}

	srv.log(ctx).Debug("Interview created", slog.Int64("interviewID", interview.ID), slog.Any("ownerID", ownerID))

	return interview, nil
}

// Get returns the detail view: the record, its comments oldest first, and the
// viewer's favorite state. Anonymous viewers always see Favorited=false.
func (srv *interviewService) Get(ctx context.Context, id int64, viewerID uuid.UUID) (*usecase.InterviewDetail, error) {
	interview, err := srv.interviewRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return nil, domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		srv.log(ctx).Error("Failed to load interview", slog.Int64("interviewID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load interview")
	}

	comments, err := srv.commentRepo.ListByInterviewID(ctx, id)
	if err != nil {
		srv.log(ctx).Error("Failed to load comments", slog.Int64("interviewID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load comments")
	}

	favorited := false
	if viewerID != uuid.Nil {
		favorited, err = srv.favoriteRepo.Exists(ctx, viewerID, id)
		if err != nil {
			srv.log(ctx).Error("Failed to load favorite state", slog.Int64("interviewID", id), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to load favorite state")
		}
	}

	return &usecase.InterviewDetail{
		Interview: interview,
		Comments:  comments,
		Favorited: favorited,
	}, nil
}

// List returns interviews newest first.
func (srv *interviewService) List(ctx context.Context, input usecase.ListInterviewsInput) ([]*entity.Interview, error) {
	interviews, err := srv.interviewRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list interviews", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list interviews")
	}

	return interviews, nil
}

// Update replaces the mutable fields of an interview. Only the owner may
// update; the owner binding itself never changes.
func (srv *interviewService) Update(ctx context.Context, id int64, requesterID uuid.UUID, fields usecase.InterviewFields) (*entity.Interview, error) {
	if err := validateInterviewFields(fields); err != nil {
		srv.log(ctx).Warn("Interview input rejected", slog.Int64("interviewID", id), slog.Any("error", err))

		return nil, err
	}

	var updated *entity.Interview
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interviewRepo := repoFactory.InterviewRepo()

		interview, err := interviewRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if interview.OwnerID != requesterID {
			return domainerrors.ErrNotOwner.WrapMessage("update requested by non-owner")
		}

		interview.CompanyName = strings.TrimSpace(fields.CompanyName)
		interview.Position = strings.TrimSpace(fields.Position)
		interview.InterviewDate = fields.InterviewDate
		interview.Review = fields.Review
		interview.Rating = fields.Rating
		interview.Result = fields.Result

		if err := interviewRepo.Update(ctx, interview); err != nil {
			return err
		}
		updated = interview

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return nil, domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		if errors.Is(err, domainerrors.ErrNotOwner) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute interview update transaction", slog.Int64("interviewID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute interview update transaction")
	}

	return updated, nil
}

// Delete removes an interview and everything hanging off it. The comments and
// favorites go inside the same transaction; the FK ON DELETE CASCADE on the
// schema is only a backstop.
func (srv *interviewService) Delete(ctx context.Context, id int64, requesterID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		interviewRepo := repoFactory.InterviewRepo()

		interview, err := interviewRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if interview.OwnerID != requesterID {
			return domainerrors.ErrNotOwner.WrapMessage("delete requested by non-owner")
		}

		if err := repoFactory.CommentRepo().DeleteByInterviewID(ctx, id); err != nil {
			return err
		}
		if err := repoFactory.FavoriteRepo().DeleteByInterviewID(ctx, id); err != nil {
			return err
		}

		return interviewRepo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		if errors.Is(err, domainerrors.ErrNotOwner) {
			return err
		}
		srv.log(ctx).Error("Failed to execute interview delete transaction", slog.Int64("interviewID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute interview delete transaction")
	}

	srv.log(ctx).Info("Interview deleted", slog.Int64("interviewID", id), slog.Any("requesterID", requesterID))

	return nil
}

func validateInterviewFields(fields usecase.InterviewFields) error {
	violations := domainerrors.NewFieldViolations()

	companyName := strings.TrimSpace(fields.CompanyName)
	if companyName == "" {
		violations.Add("company_name", "公司名稱不可為空")
	} else if len(companyName) < companyNameMinLength {
		violations.Add("company_name", "公司名稱長度不足")
	}

	if strings.TrimSpace(fields.Position) == "" {
		violations.Add("position", "職位不可為空")
	}

	if fields.Rating < entity.MinRating || fields.Rating > entity.MaxRating {
		violations.Add("rating", "評分必須介於 1 到 10 之間")
	}

	if violations.Empty() {
		return nil
	}

	return violations
}
