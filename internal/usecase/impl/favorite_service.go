package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "interviewlog/internal/delivery/context"
	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/usecase"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the favorite mark inside one transaction. The insert is
// conflict-safe at the repository level, so when a concurrent toggle wins the
// race the second insert reports ErrDuplicateFavorite without aborting the
// transaction, and both callers resolve to the favorited state.
func (srv *favoriteService) Toggle(ctx context.Context, userID uuid.UUID, interviewID int64) (*usecase.FavoriteState, error) {
	var nowFavorited bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.InterviewRepo().FindByID(ctx, interviewID); err != nil {
			return err
		}

		favoriteRepo := repoFactory.FavoriteRepo()

		removed, err := favoriteRepo.Delete(ctx, userID, interviewID)
		if err != nil {
			return err
		}
		if removed {
			nowFavorited = false

			return nil
		}

		err = favoriteRepo.Create(ctx, &entity.Favorite{UserID: userID, InterviewID: interviewID})
		if err != nil && !errors.Is(err, repository.ErrDuplicateFavorite) {
			return err
		}
		nowFavorited = true

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrInterviewNotFound) {
			return nil, domainerrors.ErrInterviewNotFound.WrapMessage("interview does not exist")
		}
		srv.log(ctx).Error("Failed to execute favorite toggle transaction",
			slog.Any("userID", userID), slog.Int64("interviewID", interviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute favorite toggle transaction")
	}

	return &usecase.FavoriteState{NowFavorited: nowFavorited}, nil
}
