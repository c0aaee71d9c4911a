package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	policy := NewEmailAllowlist([]string{"Admin@Example.com", " ops@example.com "})
	svc := NewAuthService("secret-pw", policy, []byte("test-secret"))

	t.Run("allowlisted email with correct password", func(t *testing.T) {
		resp, err := svc.Login("admin@example.com", "secret-pw")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.NotEmpty(t, resp.AdminID)
	})

	t.Run("allowlist is case-insensitive and trimmed", func(t *testing.T) {
		_, err := svc.Login("OPS@example.com", "secret-pw")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("admin@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("email outside the allowlist", func(t *testing.T) {
		_, err := svc.Login("intruder@example.com", "secret-pw")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateToken(t *testing.T) {
	policy := NewEmailAllowlist([]string{"admin@example.com"})
	svc := NewAuthService("pw", policy, []byte("test-secret"))

	resp, err := svc.Login("admin@example.com", "pw")
	require.NoError(t, err)

	t.Run("valid token round-trips claims", func(t *testing.T) {
		claims, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.AdminID, claims.AdminID)
		assert.Equal(t, "admin@example.com", claims.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthService("pw", policy, []byte("other-secret"))
		otherResp, err := other.Login("admin@example.com", "pw")
		require.NoError(t, err)

		_, err = svc.ValidateToken(otherResp.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
