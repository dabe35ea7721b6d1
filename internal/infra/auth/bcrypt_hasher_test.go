package auth

import (
	"testing"

	"nestly/config"

	"github.com/stretchr/testify/assert"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}} // min cost keeps tests fast

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "secret"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsNonDeterministic(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("secret")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret")
	assert.NoError(t, err)

	// Fresh salt per call: the hashes differ yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "secret"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("wrong", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{}).(*bcryptHasher)

	// Falls back to bcrypt's default when no cost is configured.
	assert.Equal(t, 10, hasher.cost)
}
