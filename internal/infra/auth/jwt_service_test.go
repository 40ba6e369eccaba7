package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinelog/config"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/errors"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.JWT = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestJWTService_IssueSetsExpiry(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)

	assert.WithinDuration(t, claims.IssuedAt.Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	t.Parallel()

	// A negative lifetime makes the token expired the moment it is issued.
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	t.Parallel()

	issuer := &jwtService{secret: "issuer-secret", ttl: tokenTTL}
	verifier := &jwtService{secret: "other-secret", ttl: tokenTTL}

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalidSignature))
}

func TestJWTService_VerifyMalformedToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_VerifyRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	// alg=none tokens must never pass HMAC verification.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-42"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestJWTService_VerifyRejectsMissingSubject(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService(t)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}
