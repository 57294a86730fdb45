package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash(hash, "admin123"))
	assert.False(t, CheckPasswordHash(hash, "admin124"))
	assert.False(t, CheckPasswordHash("", "admin123"))
	assert.False(t, CheckPasswordHash("not-a-hash", "admin123"))
}

func TestHashIsSalted(t *testing.T) {
	a, err := HashPasswordAsBcrypt("secret")
	require.NoError(t, err)
	b, err := HashPasswordAsBcrypt("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
