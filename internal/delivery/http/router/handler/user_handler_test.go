package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/errors"
	mockusecase "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"
)

func TestUserHandler_SignUp(t *testing.T) {
	t.Parallel()

	body := `{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","password":"plaintext","age":36}`

	t.Run("created", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignUp(mock.Anything, &usecase.SignUpInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "plaintext",
			Age:       36,
		}).Return(nil)

		e := newTestServer(t)
		e.POST("/api/users/signup", NewUserHandler(uc).SignUp)

		rec := doJSON(e, http.MethodPost, "/api/users/signup", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"message":"User created successfully"}`, rec.Body.String())
	})

	t.Run("duplicate email maps to a server error", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
			Return(domainerrors.ErrDuplicateEmail.WrapMessage("failed to create user during signup"))

		e := newTestServer(t)
		e.POST("/api/users/signup", NewUserHandler(uc).SignUp)

		rec := doJSON(e, http.MethodPost, "/api/users/signup", body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"email already registered"}`, rec.Body.String())
	})

	t.Run("missing required field", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)

		e := newTestServer(t)
		e.POST("/api/users/signup", NewUserHandler(uc).SignUp)

		rec := doJSON(e, http.MethodPost, "/api/users/signup", `{"email":"ada@example.com"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"missing required field"}`, rec.Body.String())
	})

	t.Run("unexpected failure returns the error text", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
			Return(errors.New("store offline"))

		e := newTestServer(t)
		e.POST("/api/users/signup", NewUserHandler(uc).SignUp)

		rec := doJSON(e, http.MethodPost, "/api/users/signup", body)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"message":"store offline"}`, rec.Body.String())
	})
}

func TestUserHandler_SignIn(t *testing.T) {
	t.Parallel()

	body := `{"email":"ada@example.com","password":"plaintext"}`

	t.Run("returns a token", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignIn(mock.Anything, &usecase.SignInInput{
			Email:    "ada@example.com",
			Password: "plaintext",
		}).Return(&usecase.SignInOutput{Token: "signed-token"}, nil)

		e := newTestServer(t)
		e.POST("/api/users/signin", NewUserHandler(uc).SignIn)

		rec := doJSON(e, http.MethodPost, "/api/users/signin", body)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"signed-token"}`, rec.Body.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignIn(mock.Anything, mock.AnythingOfType("*usecase.SignInInput")).
			Return(nil, domainerrors.ErrUserNotFound.WrapMessage("signin failed"))

		e := newTestServer(t)
		e.POST("/api/users/signin", NewUserHandler(uc).SignIn)

		rec := doJSON(e, http.MethodPost, "/api/users/signin", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().SignIn(mock.Anything, mock.AnythingOfType("*usecase.SignInInput")).
			Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed"))

		e := newTestServer(t)
		e.POST("/api/users/signin", NewUserHandler(uc).SignIn)

		rec := doJSON(e, http.MethodPost, "/api/users/signin", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)

		e := newTestServer(t)
		e.POST("/api/users/signin", NewUserHandler(uc).SignIn)

		rec := doJSON(e, http.MethodPost, "/api/users/signin", `{"email":"ada@example.com"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"missing required field"}`, rec.Body.String())
	})
}

func TestUserHandler_SignOut(t *testing.T) {
	t.Parallel()

	uc := mockusecase.NewMockUserUsecase(t)
	uc.EXPECT().SignOut(mock.Anything).Return(nil)

	e := newTestServer(t)
	e.POST("/api/users/signOut", NewUserHandler(uc).SignOut)

	rec := doJSON(e, http.MethodPost, "/api/users/signOut", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Signed out successfully"}`, rec.Body.String())
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	t.Parallel()

	t.Run("returns a page without password hashes", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().ListUsers(mock.Anything, &usecase.ListUsersInput{Page: 2}).
			Return(&usecase.ListUsersOutput{
				Page: 2,
				Users: []*entity.User{
					{ID: "user-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", PasswordHash: "hashed", Age: 36},
				},
			}, nil)

		e := newTestServer(t)
		e.GET("/api/users/getAllUsers", NewUserHandler(uc).GetAllUsers)

		rec := doJSON(e, http.MethodGet, "/api/users/getAllUsers?page=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{
			"message": "success",
			"Page": 2,
			"Users": [
				{"id":"user-1","first_name":"Ada","last_name":"Lovelace","email":"ada@example.com","age":36}
			]
		}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "hashed")
	})

	t.Run("page defaults to one", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)
		uc.EXPECT().ListUsers(mock.Anything, &usecase.ListUsersInput{Page: 1}).
			Return(&usecase.ListUsersOutput{Page: 1, Users: nil}, nil)

		e := newTestServer(t)
		e.GET("/api/users/getAllUsers", NewUserHandler(uc).GetAllUsers)

		rec := doJSON(e, http.MethodGet, "/api/users/getAllUsers", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"success","Page":1,"Users":[]}`, rec.Body.String())
	})

	t.Run("rejects a non-numeric page", func(t *testing.T) {
		t.Parallel()

		uc := mockusecase.NewMockUserUsecase(t)

		e := newTestServer(t)
		e.GET("/api/users/getAllUsers", NewUserHandler(uc).GetAllUsers)

		rec := doJSON(e, http.MethodGet, "/api/users/getAllUsers?page=abc", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"invalid page"}`, rec.Body.String())
	})
}
