package auth

import (
	"testing"

	"bookz/config"
	"bookz/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *jwtService {
	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{
			Access:  "test-access-secret",
			Refresh: "test-refresh-secret",
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	userID := uuid.New()

	accessToken, refreshToken, err := svc.GenerateTokens(userID, []string{entity.RoleUser})
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	token, err := svc.ValidateAccessToken(accessToken)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newTestTokenService(t)

	_, refreshToken, err := svc.GenerateTokens(uuid.New(), []string{entity.RoleUser})
	require.NoError(t, err)

	// Signed with the refresh secret, must not validate as an access token.
	_, err = svc.ValidateAccessToken(refreshToken)
	require.Error(t, err)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateAccessToken("not.a.token")
	require.Error(t, err)
}
