// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "nestly/internal/delivery/context"
	"nestly/internal/domain/entity"
	domainerrors "nestly/internal/domain/errors"
	"nestly/internal/domain/repository"
	"nestly/internal/domain/service"
	"nestly/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minPasswordLength is the only input validation signup performs.
const minPasswordLength = 5

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all
// dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account after the duplicate and password-length
// checks pass.
//
// The duplicate check and the insert are two separate store calls with no
// uniqueness constraint between them, so two concurrent signups with the same
// pair can both succeed. Known race, kept as-is.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByNameAndEmail(ctx, input.Username, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing account")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration rejected: account exists", slog.String("username", input.Username))

		return nil, domainerrors.ErrAccountExists
	}

	// Duplicate check runs before the password check; a taken pair wins
	// even when the password is also too short.
	if len(input.Password) < minPasswordLength {
		srv.log(ctx).Warn("Registration rejected: password too short", slog.String("username", input.Username))

		return nil, domainerrors.ErrPasswordTooShort
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		RoleID:   entity.RoleNormalUser,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login authenticates the account and issues a bearer token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByNameAndEmail(ctx, input.Username, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login rejected: unknown account", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Warn("Login rejected: password mismatch", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Login completed", slog.String("userID", user.ID))

	return &usecase.LoginOutput{Token: token, RoleID: user.RoleID}, nil
}
