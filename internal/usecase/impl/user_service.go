// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "interviewlog/internal/delivery/context"
	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	"interviewlog/internal/domain/service"
	"interviewlog/internal/usecase"
)

const usernameMinLength = 3

// dummyPasswordHash is compared against when the username does not exist, so
// that a failed login takes the same time whether or not the account is real.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.SessionTokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.SessionTokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.validateRegistration(input); err != nil {
		srv.log(ctx).Warn("Registration input rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Tier:      entity.TierFree,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser, hashedPassword)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.NewFieldViolations().
				Add("username", domainerrors.ErrUserAlreadyExists.Message())
		}
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

func (srv *userService) validateRegistration(input usecase.RegisterInput) error {
	violations := domainerrors.NewFieldViolations()

	username := strings.TrimSpace(input.Username)
	if username == "" {
		violations.Add("username", "帳號不可為空")
	} else if len(username) < usernameMinLength {
		violations.Add("username", "帳號長度不足")
	}

	if strings.TrimSpace(input.Email) == "" {
		violations.Add("email", "信箱不可為空")
	}

	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		violations.Add("password", domainerrors.ErrPasswordStrength.Message())
	}

	if violations.Empty() {
		return nil
	}

	return violations
}

// Login verifies the credentials and establishes a new session.
// The failure shape is identical whether the username exists or not.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	credential, err := srv.userRepo.FindCredentialByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same bcrypt cost as a real comparison.
			srv.hasher.Check(input.Password, dummyPasswordHash)

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}
		srv.log(ctx).Error("Failed to load credential for login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load credential for login")
	}

	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		srv.log(ctx).Error("Failed to load user for login", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	session := &entity.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(srv.tokenService.TTL()),
	}

	token, err := srv.tokenService.Issue(session.ID, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}
	session.TokenHash = srv.tokenService.Hash(token)

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	next := input.Next
	if next == "" {
		next = "/"
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user, Next: next}, nil
}

// Logout destroys the session addressed by the token. Logging out an already
// dead session is not an error.
func (srv *userService) Logout(ctx context.Context, token string) error {
	tokenHash := srv.tokenService.Hash(token)

	err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil
		}
		srv.log(ctx).Error("Failed to delete session", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Resolve maps a wire token to the logged-in user. The signature is only the
// first gate; the session row must still be alive, which is what makes logout
// take effect immediately.
func (srv *userService) Resolve(ctx context.Context, token string) (*usecase.Identity, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("malformed or expired session token")
	}

	session, err := srv.sessionRepo.FindByTokenHash(ctx, srv.tokenService.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session no longer active")
		}
		srv.log(ctx).Error("Failed to load session", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.ID != claims.SessionID || session.UserID != claims.UserID {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session token does not match its session")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session user no longer exists")
		}
		srv.log(ctx).Error("Failed to load session user", slog.Any("userID", session.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return &usecase.Identity{User: user}, nil
}
