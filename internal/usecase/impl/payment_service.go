package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"interviewlog/config"
	deliverycontext "interviewlog/internal/delivery/context"
	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/domain/service"
	"interviewlog/internal/usecase"
)

const defaultPremiumAmountCents = 1999

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager          repository.TransactionManager
	userRepo           repository.UserRepository
	gateway            service.PaymentGateway
	premiumAmountCents int64
	logger             *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Gateway   service.PaymentGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	amount := int64(defaultPremiumAmountCents)
	if params.Config != nil && params.Config.Braintree != nil && params.Config.Braintree.PremiumAmountCents > 0 {
		amount = params.Config.Braintree.PremiumAmountCents
	}

	return &paymentService{
		txManager:          params.TxManager,
		userRepo:           params.UserRepo,
		gateway:            params.Gateway,
		premiumAmountCents: amount,
		logger:             params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ClientToken obtains a gateway client token for the payment form.
func (srv *paymentService) ClientToken(ctx context.Context) (*usecase.ClientTokenOutput, error) {
	token, err := srv.gateway.GenerateClientToken(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to generate payment client token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate payment client token")
	}

	return &usecase.ClientTokenOutput{ClientToken: token}, nil
}

// Charge submits the premium purchase and, only after the gateway accepts,
// upgrades the user's tier. A declined charge leaves the account untouched.
func (srv *paymentService) Charge(ctx context.Context, userID uuid.UUID, nonce string) (*usecase.ChargeOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("payer does not exist")
		}
		srv.log(ctx).Error("Failed to load payer", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load payer")
	}

	result, err := srv.gateway.Charge(ctx, srv.premiumAmountCents, nonce)
	if err != nil {
		srv.log(ctx).Warn("Charge declined", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrPaymentFailed.WrapMessage("gateway declined the charge")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().UpdateTier(ctx, user.ID, entity.TierPremium)
	})
	if err != nil {
		// The money moved but the upgrade did not; this needs an operator.
		srv.log(ctx).Error("Charge succeeded but tier upgrade failed",
			slog.Any("userID", user.ID), slog.String("transactionID", result.TransactionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upgrade tier after charge")
	}

	srv.log(ctx).Info("Premium purchase completed", slog.Any("userID", user.ID), slog.String("transactionID", result.TransactionID))

	return &usecase.ChargeOutput{
		TransactionID: result.TransactionID,
		Tier:          entity.TierPremium,
	}, nil
}
