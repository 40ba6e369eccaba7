// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"
)

// UserHandler holds dependencies for identity-related handlers.
type UserHandler struct {
	uc usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type signUpRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Age       int    `json:"age" validate:"required"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Token string `json:"token"`
}

// userView is the public shape of a user. The password hash is never serialized.
type userView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

type listUsersResponse struct {
	Message string     `json:"message"`
	Page    int        `json:"Page"`
	Users   []userView `json:"Users"`
}

// SignUp handles the user registration request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := &usecase.SignUpInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
	}

	if err := h.uc.SignUp(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User created successfully")
}

// SignIn handles the credential check and returns a bearer token.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, signInResponse{Token: output.Token})
}

// SignOut acknowledges a sign-out. Tokens stay valid until expiry.
func (h *UserHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Signed out successfully")
}

// GetAllUsers returns one fixed-size page of registered users.
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return response.Message(c, http.StatusBadRequest, "invalid page")
		}
		page = parsed
	}

	output, err := h.uc.ListUsers(c.Request().Context(), &usecase.ListUsersInput{Page: page})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Message: "success",
		Page:    output.Page,
		Users:   toUserViews(output.Users),
	})
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, userView{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Age:       user.Age,
		})
	}

	return views
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
