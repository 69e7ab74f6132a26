package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/domain/auth"
)

func newJWT(ttl time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "storecore",
		TokenTTL: ttl,
	})
}

func TestIssueAndParseRoundtrip(t *testing.T) {
	svc := newJWT(time.Hour)

	token, expiresAt, err := svc.Issue("admin", "owner")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "storecore", claims.Issuer)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	svc := newJWT(-time.Minute)

	token, _, err := svc.Issue("admin", "owner")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	svc := newJWT(time.Hour)

	token, _, err := svc.Issue("admin", "owner")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Parse(tampered)
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := newJWT(time.Hour)
	verifier := auth.NewJWTService(auth.JWTConfig{
		Secret:   "other-secret",
		Issuer:   "storecore",
		TokenTTL: time.Hour,
	})

	token, _, err := issuer.Issue("admin", "owner")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestDefaultConfigTTL(t *testing.T) {
	cfg := auth.DefaultJWTConfig("s")

	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "storecore", cfg.Issuer)
}
