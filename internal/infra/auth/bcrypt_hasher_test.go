package auth

import (
	"testing"

	"bookz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // min cost keeps tests fast
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Str0ngPass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ngPass", hash)

	assert.True(t, hasher.Check("Str0ngPass", hash))
	assert.False(t, hasher.Check("wrong", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Str0ngPass")
	require.NoError(t, err)
	second, err := hasher.Hash("Str0ngPass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	require.NoError(t, hasher.ValidatePasswordStrength("Str0ngPass"))

	assert.Error(t, hasher.ValidatePasswordStrength("Sh0rt"))
	assert.Error(t, hasher.ValidatePasswordStrength("alllowercase1"))
	assert.Error(t, hasher.ValidatePasswordStrength("ALLUPPERCASE1"))
	assert.Error(t, hasher.ValidatePasswordStrength("NoDigitsHere"))
}
