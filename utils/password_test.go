package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", hash)

	assert.True(t, CheckPasswordHash("password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, err := HashPassword("password")
	require.NoError(t, err)
	h2, err := HashPassword("password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
