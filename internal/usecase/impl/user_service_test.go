package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"interviewlog/internal/domain/entity"
	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/domain/repository"
	domainservice "interviewlog/internal/domain/service"
	mockRepo "interviewlog/internal/mocks/repository"
	mockSvc "interviewlog/internal/mocks/service"
	"interviewlog/internal/usecase"
)

func newUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	hasher *mockSvc.MockPasswordHasher,
	tokenService *mockSvc.MockSessionTokenService,
) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.Default(),
	})
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.EXPECT().ValidateStrength("pw123456").Return(nil)
	hasher.EXPECT().Hash("pw123456").Return("hashed-password", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(nil)

	output, err := service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Password: "pw123456",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, entity.TierFree, output.User.Tier)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	txManager := newPassthroughTxManager(t, factory)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()

	hasher.EXPECT().ValidateStrength("pw123456").Return(nil)
	hasher.EXPECT().Hash("pw123456").Return("hashed-password", nil)
	userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User"), "hashed-password").
		Return(repository.ErrDuplicateUser)

	output, err := service.Register(ctx, usecase.RegisterInput{
		Username: "alice",
		Password: "pw123456",
		Email:    "alice@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var violations *domainerrors.FieldViolations
	require.ErrorAs(t, err, &violations)
	assert.Contains(t, violations.Fields(), "username")
}

func TestUserService_Register_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		field string
	}{
		{
			name:  "empty username",
			input: usecase.RegisterInput{Username: "", Password: "pw123456", Email: "a@b.c"},
			field: "username",
		},
		{
			name:  "short username",
			input: usecase.RegisterInput{Username: "ab", Password: "pw123456", Email: "a@b.c"},
			field: "username",
		},
		{
			name:  "empty email",
			input: usecase.RegisterInput{Username: "alice", Password: "pw123456", Email: ""},
			field: "email",
		},
		{
			name:  "weak password",
			input: usecase.RegisterInput{Username: "alice", Password: "pw", Email: "a@b.c"},
			field: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			hasher := mockSvc.NewMockPasswordHasher(t)
			tokenService := mockSvc.NewMockSessionTokenService(t)
			txManager := mockRepo.NewMockTransactionManager(t)

			hasher.EXPECT().ValidateStrength("pw123456").Return(nil).Maybe()
			hasher.EXPECT().
				ValidateStrength("pw").
				Return(domainerrors.ErrPasswordStrength).
				Maybe()

			service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

			output, err := service.Register(context.Background(), tt.input)
			require.Error(t, err)
			assert.Nil(t, output)

			var violations *domainerrors.FieldViolations
			require.ErrorAs(t, err, &violations)
			assert.Contains(t, violations.Fields(), tt.field)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", Tier: entity.TierFree}

	userRepo.EXPECT().
		FindCredentialByUsername(ctx, "alice").
		Return(&entity.Credential{UserID: userID, PasswordHash: "stored-hash"}, nil)
	hasher.EXPECT().Check("pw123456", "stored-hash").Return(true)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	tokenService.EXPECT().TTL().Return(24 * time.Hour)
	tokenService.EXPECT().
		Issue(mock.AnythingOfType("uuid.UUID"), userID).
		Return("wire-token", nil)
	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		RunAndReturn(func(_ context.Context, session *entity.Session) error {
			assert.Equal(t, userID, session.UserID)
			assert.Equal(t, "token-hash", session.TokenHash)
			assert.True(t, session.ExpiresAt.After(time.Now()))
			return nil
		})

	output, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "pw123456"})
	require.NoError(t, err)
	assert.Equal(t, "wire-token", output.Token)
	assert.Equal(t, user, output.User)
	assert.Equal(t, "/", output.Next)
}

func TestUserService_Login_PreservesNext(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindCredentialByUsername(ctx, "alice").
		Return(&entity.Credential{UserID: userID, PasswordHash: "stored-hash"}, nil)
	hasher.EXPECT().Check("pw123456", "stored-hash").Return(true)
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	tokenService.EXPECT().TTL().Return(24 * time.Hour)
	tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID"), userID).Return("wire-token", nil)
	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)

	output, err := service.Login(ctx, usecase.LoginInput{
		Username: "alice",
		Password: "pw123456",
		Next:     "/interviews/42",
	})
	require.NoError(t, err)
	assert.Equal(t, "/interviews/42", output.Next)
}

func TestUserService_Login_UnknownUserStillBurnsHash(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.EXPECT().
		FindCredentialByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)
	// The same bcrypt work must happen even though nobody exists.
	hasher.EXPECT().Check("pw123456", dummyPasswordHash).Return(false)

	output, err := service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "pw123456"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindCredentialByUsername(ctx, "alice").
		Return(&entity.Credential{UserID: userID, PasswordHash: "stored-hash"}, nil)
	hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	output, err := service.Login(ctx, usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Logout_DestroysSession(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()

	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	require.NoError(t, service.Logout(ctx, "wire-token"))
}

func TestUserService_Logout_AlreadyGoneIsFine(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()

	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "token-hash").
		Return(repository.ErrSessionNotFound)

	require.NoError(t, service.Logout(ctx, "wire-token"))
}

func TestUserService_Resolve_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}

	tokenService.EXPECT().
		Parse("wire-token").
		Return(&domainservice.SessionClaims{SessionID: sessionID, UserID: userID}, nil)
	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token-hash").
		Return(&entity.Session{ID: sessionID, UserID: userID}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	identity, err := service.Resolve(ctx, "wire-token")
	require.NoError(t, err)
	assert.Equal(t, user, identity.User)
}

func TestUserService_Resolve_LoggedOutTokenRejected(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockSessionTokenService(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	service := newUserService(txManager, userRepo, sessionRepo, hasher, tokenService)

	ctx := context.Background()
	sessionID := uuid.New()
	userID := uuid.New()

	// The signature is still valid, but the session row is gone.
	tokenService.EXPECT().
		Parse("wire-token").
		Return(&domainservice.SessionClaims{SessionID: sessionID, UserID: userID}, nil)
	tokenService.EXPECT().Hash("wire-token").Return("token-hash")
	sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token-hash").
		Return(nil, repository.ErrSessionNotFound)

	identity, err := service.Resolve(ctx, "wire-token")
	require.Error(t, err)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
