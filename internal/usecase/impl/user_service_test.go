package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/errors"
	mockrepository "cinelog/internal/mocks/repository"
	mockservice "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"
)

type userServiceMocks struct {
	userRepo     *mockrepository.MockUserRepository
	hasher       *mockservice.MockPasswordHasher
	tokenService *mockservice.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, userServiceMocks) {
	t.Helper()

	mocks := userServiceMocks{
		userRepo:     mockrepository.NewMockUserRepository(t),
		hasher:       mockservice.NewMockPasswordHasher(t),
		tokenService: mockservice.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func TestUserService_SignUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := &usecase.SignUpInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "plaintext",
		Age:       36,
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.hasher.EXPECT().Hash("plaintext").Return("hashed", nil)
		mocks.userRepo.EXPECT().Create(ctx, &entity.User{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			Email:        "ada@example.com",
			PasswordHash: "hashed",
			Age:          36,
		}).Return(nil)

		err := svc.SignUp(ctx, input)
		require.NoError(t, err)
	})

	t.Run("never stores the plaintext password", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.hasher.EXPECT().Hash("plaintext").Return("hashed", nil)
		mocks.userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				assert.Equal(t, "hashed", user.PasswordHash)
				assert.NotContains(t, user.PasswordHash, "plaintext")
			}).
			Return(nil)

		require.NoError(t, svc.SignUp(ctx, input))
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.hasher.EXPECT().Hash("plaintext").Return("hashed", nil)
		mocks.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)

		err := svc.SignUp(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
	})

	t.Run("hasher failure", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.hasher.EXPECT().Hash("plaintext").Return("", errors.New("cost out of range"))

		err := svc.SignUp(ctx, input)
		require.Error(t, err)
	})
}

func TestUserService_SignIn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	input := &usecase.SignInInput{Email: "ada@example.com", Password: "plaintext"}
	storedUser := &entity.User{
		ID:           "user-1",
		Email:        "ada@example.com",
		PasswordHash: "hashed",
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser, nil)
		mocks.hasher.EXPECT().Check("plaintext", "hashed").Return(true)
		mocks.tokenService.EXPECT().Issue("user-1").Return("signed-token", nil)

		output, err := svc.SignIn(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", output.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := svc.SignIn(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser, nil)
		mocks.hasher.EXPECT().Check("plaintext", "hashed").Return(false)

		_, err := svc.SignIn(ctx, input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("token issue failure", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(storedUser, nil)
		mocks.hasher.EXPECT().Check("plaintext", "hashed").Return(true)
		mocks.tokenService.EXPECT().Issue("user-1").Return("", errors.New("signing failed"))

		_, err := svc.SignIn(ctx, input)
		require.Error(t, err)
	})
}

func TestUserService_SignOut(t *testing.T) {
	t.Parallel()

	svc, _ := newUserService(t)

	// Stateless tokens: signout has nothing to do server-side.
	require.NoError(t, svc.SignOut(context.Background()))
}

func TestUserService_ListUsers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	users := []*entity.User{{ID: "user-1"}, {ID: "user-2"}}

	t.Run("first page", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().List(ctx, 0, usersPageSize).Return(users, nil)

		output, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 1})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Page)
		assert.Equal(t, users, output.Users)
	})

	t.Run("later page offsets the query", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().List(ctx, 2*usersPageSize, usersPageSize).Return(nil, nil)

		output, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, output.Page)
		assert.Empty(t, output.Users)
	})

	t.Run("page below one clamps to the first page", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().List(ctx, 0, usersPageSize).Return(users, nil)

		output, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Page)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc, mocks := newUserService(t)

		mocks.userRepo.EXPECT().List(ctx, 0, usersPageSize).Return(nil, errors.New("store offline"))

		_, err := svc.ListUsers(ctx, &usecase.ListUsersInput{Page: 1})
		require.Error(t, err)
	})
}
