package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword(hash, "s3cret-pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPasswordOutOfRangeCost(t *testing.T) {
	hash, err := HashPassword("pw", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "guitar", NormalizeName("  Guitar "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "guitar", EscapeLike("guitar"))
	assert.Equal(t, `100\%`, EscapeLike("100%"))
	assert.Equal(t, `c\_sharp`, EscapeLike("c_sharp"))
	assert.Equal(t, `a\\b`, EscapeLike(`a\b`))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
}
