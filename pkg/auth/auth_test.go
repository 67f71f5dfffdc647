package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Run("round trip preserves claims", func(t *testing.T) {
		token, err := GenerateToken(42, "asha", "admin")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "asha", claims.Username)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "storefront", claims.Issuer)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ValidateToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		token, err := GenerateToken(1, "user", "user")
		require.NoError(t, err)

		_, err = ValidateToken(token + "x")
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("hash verifies against original password", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", hash)
		assert.True(t, CheckPassword("secret123", hash))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		hash, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.False(t, CheckPassword("secret124", hash))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		h1, err := HashPassword("secret123")
		require.NoError(t, err)
		h2, err := HashPassword("secret123")
		require.NoError(t, err)
		assert.NotEqual(t, h1, h2)
	})
}
