package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	// Use the minimum cost to keep the test fast
	hasher := NewBcryptHasher(bcrypt.MinCost)

	plaintexts := []string{
		"secret1",
		"a much longer password with spaces",
		"p@$$w0rd!#%^&*()",
	}

	for _, plaintext := range plaintexts {
		t.Run(plaintext, func(t *testing.T) {
			t.Parallel()

			hashed, err := hasher.Hash(plaintext)
			require.NoError(t, err)
			require.NotEmpty(t, hashed)
			assert.NotEqual(t, plaintext, hashed)

			// Round-trips true for the original plaintext
			assert.NoError(t, hasher.Compare(hashed, plaintext))

			// And false for any other plaintext
			assert.ErrorIs(t, hasher.Compare(hashed, plaintext+"x"), ErrPasswordMismatch)
		})
	}
}

func TestBcryptHasherSaltsEachHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	// A fresh salt per call means identical inputs never collide
	assert.NotEqual(t, first, second)
}

func TestBcryptHasherMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)

	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty hash", hashed: ""},
		{name: "not a bcrypt hash", hashed: "plaintext-stored-by-mistake"},
		{name: "truncated hash", hashed: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// Malformed stored hashes verify as mismatch, never panic
			err := hasher.Compare(tt.hashed, "secret1")
			assert.ErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestNewBcryptHasherDefaultsCost(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}
