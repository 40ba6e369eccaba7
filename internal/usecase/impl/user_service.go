// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"
)

// usersPageSize is the fixed page size of the user listing.
const usersPageSize = 10

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
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

// SignUp registers a new account. Validation is structural only: the
// delivery layer has already checked field presence, and no email-format
// or password-strength rules apply here.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) error {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Age:          input.Age,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			srv.log(ctx).Warn("Signup rejected, email taken", slog.String("email", input.Email))

			return domainerrors.ErrDuplicateEmail.WrapMessage("failed to create user during signup")
		}

		return errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.String("userID", newUser.ID))

	return nil
}

// SignIn walks the credential check: look up by email, verify the
// password, then issue a token for the user's ID. The "User not found"
// vs "Invalid credentials" distinction is deliberate wire behavior.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting signin", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Signin failed, unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound.WrapMessage("signin failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// bcrypt check runs outside any store interaction (CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Signin failed, password mismatch", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("User signed in", slog.String("userID", user.ID))

	return &usecase.SignInOutput{Token: token}, nil
}

// SignOut is a pure acknowledgment. Tokens are stateless and cannot be
// revoked early, so there is nothing to clear server-side.
func (srv *userService) SignOut(ctx context.Context) error {
	srv.log(ctx).Debug("Signout acknowledged")

	return nil
}

// ListUsers returns one fixed-size page of users.
func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	users, err := srv.userRepo.List(ctx, (page-1)*usersPageSize, usersPageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Int("page", page), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{Page: page, Users: users}, nil
}
