package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yalcin/gatherly/internal/app/models"
)

func testJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:     "test-secret",
		TokenExp:      time.Hour,
		TokenIssuer:   "gatherly.test",
		TokenAudience: "gatherly.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    7,
		Name:  "Jane Doe",
		Email: "jane@example.com",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := testJWTService()

	token, expiresIn, err := service.GenerateToken(testUser())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int(time.Hour.Seconds()), expiresIn)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Jane Doe", claims.Name)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "gatherly.test", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testJWTService().GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:     "different-secret",
		TokenExp:      time.Hour,
		TokenIssuer:   "gatherly.test",
		TokenAudience: "gatherly.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	token, _, err := testJWTService().GenerateToken(testUser())
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{
		SecretKey:     "test-secret",
		TokenExp:      time.Hour,
		TokenIssuer:   "someone-else",
		TokenAudience: "gatherly.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	expired := NewJWTService(JWTConfig{
		SecretKey:     "test-secret",
		TokenExp:      -time.Minute,
		TokenIssuer:   "gatherly.test",
		TokenAudience: "gatherly.test",
	})

	token, _, err := expired.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	assert.Equal(t, ErrExpiredToken, err)
}

func TestValidateAndExtractClaimsEmpty(t *testing.T) {
	_, err := testJWTService().ValidateAndExtractClaims("")
	assert.Equal(t, ErrInvalidToken, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.Equal(t, ErrInvalidFormat, err)
}
