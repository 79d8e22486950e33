// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookz/internal/delivery/context"
	"bookz/internal/domain/entity"
	domainerrors "bookz/internal/domain/errors"
	"bookz/internal/domain/repository"
	"bookz/internal/domain/service"
	"bookz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with the "user" role.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	if input.Phone != "" && !phonePattern.MatchString(input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrInvalidPhoneNumber, "register")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.userRepo.Create(ctx, user, hashedPassword); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "register")
		}

		srv.log(ctx).Error("Failed to create user",
			slog.String("username", input.Username),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, username, password string) (*entity.User, *usecase.TokenPair, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	hash, err := srv.userRepo.PasswordHashByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to load credentials")
	}

	// bcrypt check is CPU-bound; done before any further lookups.
	if !srv.hasher.Check(password, hash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", username))

		return nil, nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return user, &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetProfile retrieves the account for the given user ID.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "get profile")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return user, nil
}

// UpdatePhone sets or clears the profile phone number. The profile phone is
// the fallback recipient for subscriptions without their own number, so it
// passes the same format check as subscription phones.
func (srv *userService) UpdatePhone(ctx context.Context, userID uuid.UUID, phone string) error {
	if phone != "" && !phonePattern.MatchString(phone) {
		return errors.Wrap(domainerrors.ErrInvalidPhoneNumber, "update phone")
	}

	if err := srv.userRepo.UpdatePhone(ctx, userID, phone); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "update phone")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update phone")
	}

	srv.log(ctx).Info("Profile phone updated", slog.Any("userID", userID))

	return nil
}
