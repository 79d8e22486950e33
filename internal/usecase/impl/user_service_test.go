package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/entity"
	"bookz/internal/domain/repository"
	mockRepo "bookz/internal/mocks/repository"
	mockSvc "bookz/internal/mocks/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return service, userRepo, hasher, tokenService
}

func TestUserService_Register_Success(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	hasher.EXPECT().Hash("Str0ngPass!").Return("$2a$10$hash", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything, "$2a$10$hash").Return(nil)

	user, err := service.Register(ctx, usecase.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "Str0ngPass!",
		Phone:    "79001234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "reader", user.Username)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "79001234567", user.Phone)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	service, _, hasher, _ := createTestUserService(t)

	hasher.EXPECT().ValidatePasswordStrength("123").Return(errors.New("too short"))

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "123",
	})

	require.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestUserService_Register_InvalidPhone(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	_, err := service.Register(context.Background(), usecase.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "Str0ngPass!",
		Phone:    "+7 (900) 123-45-67",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}

func TestUserService_Register_DuplicateUser(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().ValidatePasswordStrength(mock.Anything).Return(nil)
	hasher.EXPECT().Hash(mock.Anything).Return("$2a$10$hash", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateUser)

	_, err := service.Register(ctx, usecase.RegisterInput{
		Username: "reader",
		Email:    "reader@example.com",
		Password: "Str0ngPass!",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	service, userRepo, hasher, tokenService := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().PasswordHashByUsername(ctx, "reader").Return("$2a$10$hash", nil)
	hasher.EXPECT().Check("Str0ngPass!", "$2a$10$hash").Return(true)
	userRepo.EXPECT().FindByUsername(ctx, "reader").Return(&entity.User{
		ID:       userID,
		Username: "reader",
		Role:     entity.RoleUser,
	}, nil)
	tokenService.EXPECT().GenerateTokens(userID, []string{entity.RoleUser}).
		Return("access-token", "refresh-token", nil)

	user, tokens, err := service.Login(ctx, "reader", "Str0ngPass!")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().PasswordHashByUsername(ctx, "reader").Return("$2a$10$hash", nil)
	hasher.EXPECT().Check("wrong", "$2a$10$hash").Return(false)

	_, _, err := service.Login(ctx, "reader", "wrong")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().PasswordHashByUsername(ctx, "ghost").
		Return("", repository.ErrUserNotFound)

	_, _, err := service.Login(ctx, "ghost", "whatever")

	// Unknown usernames and wrong passwords are indistinguishable to the caller.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdatePhone(t *testing.T) {
	service, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().UpdatePhone(ctx, userID, "79001234567").Return(nil)
	require.NoError(t, service.UpdatePhone(ctx, userID, "79001234567"))

	// Clearing the phone is allowed; the subscription then goes dormant.
	userRepo.EXPECT().UpdatePhone(ctx, userID, "").Return(nil)
	require.NoError(t, service.UpdatePhone(ctx, userID, ""))
}

func TestUserService_UpdatePhone_InvalidFormat(t *testing.T) {
	service, _, _, _ := createTestUserService(t)

	err := service.UpdatePhone(context.Background(), uuid.New(), "12345")

	require.ErrorIs(t, err, domainerrors.ErrInvalidPhoneNumber)
}
