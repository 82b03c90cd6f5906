//go:build unit

package user_test

import (
	"testing"

	"havenstay/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials(t *testing.T) {
	t.Run("valid credentials normalize the email", func(t *testing.T) {
		creds, err := user.NewCredentials("  Guest@Example.COM ", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", creds.Email().Value())
	})

	t.Run("invalid emails", func(t *testing.T) {
		for _, email := range []string{"", "plain", "no@tld", "@example.com", "a b@example.com"} {
			_, err := user.NewCredentials(email, "secret-password")
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "email %q", email)
		}
	})

	t.Run("short password", func(t *testing.T) {
		_, err := user.NewCredentials("guest@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestRole(t *testing.T) {
	for _, s := range []string{"guest", "host", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("guest@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "bcrypt-hash", user.RoleGuest)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "guest@example.com", u.Email().Value())
	assert.Equal(t, user.RoleGuest, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
}
