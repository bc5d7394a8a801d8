package auth_test

import (
	"strings"
	"testing"

	"github.com/growwitup/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("secret", nil)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$"))

	// Salts differ between calls
	other, err := auth.HashPassword("secret", nil)
	require.NoError(t, err)
	require.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	t.Run("matching password verifies", func(t *testing.T) {
		t.Parallel()
		hash, err := auth.HashPassword("secret", nil)
		require.NoError(t, err)

		match, err := auth.VerifyPassword("secret", hash)
		require.NoError(t, err)
		require.True(t, match)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		t.Parallel()
		hash, err := auth.HashPassword("secret", nil)
		require.NoError(t, err)

		match, err := auth.VerifyPassword("wrong", hash)
		require.NoError(t, err)
		require.False(t, match)
	})

	t.Run("legacy plaintext row compares directly", func(t *testing.T) {
		t.Parallel()
		match, err := auth.VerifyPassword("secret", "secret")
		require.NoError(t, err)
		require.True(t, match)

		match, err = auth.VerifyPassword("wrong", "secret")
		require.NoError(t, err)
		require.False(t, match)
	})

	t.Run("malformed argon2 hash errors", func(t *testing.T) {
		t.Parallel()
		_, err := auth.VerifyPassword("secret", "$argon2id$broken")
		require.Error(t, err)
	})
}
