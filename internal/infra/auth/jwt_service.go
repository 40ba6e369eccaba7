package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinelog/config"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
)

// tokenTTL is the fixed lifetime of an issued token.
const tokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Signing is a symmetric HMAC: issuer and verifier share the same
// process-wide secret, so there is nothing to distribute.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.JWT,
		ttl:    tokenTTL,
	}, nil
}

// Issue creates a signed token carrying the subject ID, issue and expiry instants.
// No state is kept: an issued token cannot be revoked before it expires.
func (s *jwtService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// Verify checks the token's signature and expiry and returns the subject ID.
// Failures map onto the domain taxonomy: expired, invalid signature, malformed.
func (s *jwtService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", classifyTokenError(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domainerrors.ErrTokenMalformed.WrapMessage("token has no subject")
	}

	return claims.Subject, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage("token verification failed")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.ErrTokenInvalidSignature.WrapMessage("token verification failed")
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage("token verification failed")
	}
}
