package usecase

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookeasy/backend/internal/domain"
)

func newTestAuth(now func() time.Time) *AuthService {
	return NewAuthService(AuthConfig{Secret: "test-secret", TokenTTL: time.Hour, Now: now}, zerolog.Nop())
}

func TestAuthService_Login(t *testing.T) {
	auth := newTestAuth(nil)

	tests := []struct {
		name     string
		creds    Credentials
		wantRole domain.Role
		wantName string
		wantErr  bool
	}{
		{"admin", Credentials{Email: "admin@cookeasy.com", Password: "admin"}, domain.RoleAdmin, "Admin User", false},
		{"shopper with spaces and caps", Credentials{Email: "  User@CookEasy.com ", Password: "user"}, domain.RoleUser, "Tester User", false},
		{"wrong password", Credentials{Email: "user@cookeasy.com", Password: "admin"}, "", "", true},
		{"unknown email", Credentials{Email: "chef@example.com", Password: "x"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := auth.Login(tt.creds)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidCredentials)
				assert.Contains(t, err.Error(), "admin@cookeasy.com / admin")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, result.User.Role)
			assert.Equal(t, tt.wantName, result.User.Name)
			assert.NotEmpty(t, result.Token)
		})
	}
}

func TestAuthService_Register(t *testing.T) {
	auth := newTestAuth(nil)

	result, err := auth.Register(Credentials{Email: "Chef@Example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "chef", result.User.Name)
	assert.Equal(t, domain.RoleUser, result.User.Role)
	assert.True(t, strings.HasPrefix(result.User.ID, "u-"))

	again, err := auth.Register(Credentials{Email: "chef@example.com", Password: "other", Name: "Head Chef"})
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID, "same email keeps the same user id")
	assert.Equal(t, "Head Chef", again.User.Name)

	demo, err := auth.Register(Credentials{Email: "admin@cookeasy.com", Password: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, demo.User.Role)

	_, err = auth.Register(Credentials{Email: "no-at-sign", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestAuthService_ParseToken(t *testing.T) {
	start := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
	clock := start
	auth := newTestAuth(func() time.Time { return clock })

	result, err := auth.Login(Credentials{Email: "user@cookeasy.com", Password: "user"})
	require.NoError(t, err)
	assert.Equal(t, start.Add(time.Hour), result.ExpiresAt)

	t.Run("round trip", func(t *testing.T) {
		user, err := auth.ParseToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.User, user)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewAuthService(AuthConfig{Secret: "another-secret", Now: func() time.Time { return clock }}, zerolog.Nop())
		_, err := other.ParseToken(result.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := auth.ParseToken(result.Token + "x")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := auth.ParseToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		clock = start.Add(2 * time.Hour)
		defer func() { clock = start }()

		_, err := auth.ParseToken(result.Token)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Contains(t, err.Error(), "expired")
	})
}
