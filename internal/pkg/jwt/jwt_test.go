//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"havenstay/internal/domain/user"
	"havenstay/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, user.RoleGuest)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "guest", claims.Role)
}

func TestValidateTokenFailures(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("different-secret", time.Hour)
		token, err := other.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), user.RoleGuest)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
