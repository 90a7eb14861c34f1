package utils

import (
	"testing"

	"devclub-portal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	t.Run("Success: hash at requested cost", func(t *testing.T) {
		hash, err := HashPassword("clubpass", bcrypt.MinCost)
		require.NoError(t, err)
		assert.NotEqual(t, "clubpass", hash)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.MinCost, cost)
	})

	t.Run("Success: out of range cost uses default", func(t *testing.T) {
		hash, err := HashPassword("clubpass", 0)
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("clubpass", bcrypt.MinCost)
	require.NoError(t, err)
	cred := models.Credential{MemberID: 4, Email: "dan@kle.edu", Hash: hash}

	t.Run("Success: matching password", func(t *testing.T) {
		assert.NoError(t, VerifyPassword(cred, "clubpass"))
	})

	t.Run("Error: wrong password", func(t *testing.T) {
		assert.ErrorIs(t, VerifyPassword(cred, "wrong"), ErrPasswordMismatch)
	})

	t.Run("Error: corrupt hash", func(t *testing.T) {
		err := VerifyPassword(models.Credential{MemberID: 4, Hash: "not-a-hash"}, "clubpass")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrPasswordMismatch)
		assert.Contains(t, err.Error(), "member 4")
	})
}
