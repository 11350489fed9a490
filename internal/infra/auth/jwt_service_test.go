package auth

import (
	"testing"
	"time"

	"bazaar/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionTTL: ttl}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTSessionService_IssueAndValidate(t *testing.T) {
	sessions, err := NewJWTSessionService(newTestSessionConfig("test_session_secret_key_very_long", time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := sessions.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := sessions.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, time.Hour, sessions.TTL())
}

func TestJWTSessionService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTSessionService(newTestSessionConfig("secret-one-secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTSessionService(newTestSessionConfig("secret-two-secret-two", time.Hour))
	require.NoError(t, err)

	token, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	_, err = verifier.Validate("not.a.token")
	assert.Error(t, err)
}

func TestJWTSessionService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTSessionService(newTestSessionConfig("test_session_secret_key_very_long", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtSessionService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestNewJWTSessionService_RequiresSecret(t *testing.T) {
	_, err := NewJWTSessionService(newTestSessionConfig("", time.Hour))
	assert.Error(t, err)

	svc, err := NewJWTSessionService(newTestSessionConfig("secret", 0))
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, svc.TTL())
}
