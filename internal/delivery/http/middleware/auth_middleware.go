package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/service"
)

// AuthMiddleware provides middleware for bearer token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the subject ID on the
// context. It makes no trust decision beyond signature and expiry: the
// subject is not checked against the store, and handlers keep using the
// caller-supplied userID fields from the request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Message(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Message(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Expired / malformed / bad signature map through the error handler.
			return err
		}

		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}
