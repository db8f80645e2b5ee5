package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Hash seeded for the default admin account in migrations/002_seed.sql.
// Must stay verifiable against the documented bootstrap password.
const seededAdminHash = "$2a$10$.3EZh2nnxEm1I20f/YrR6.7eZzDyti7n8ySgZVYMl8OyHMl1NIKrC"

func TestCheckPassword_SeededAdminCredential(t *testing.T) {
	assert.True(t, CheckPassword("change-me", seededAdminHash))
	assert.False(t, CheckPassword("wrong-password", seededAdminHash))
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("s3cret-pass ", hash))
}
