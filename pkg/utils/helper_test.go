package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-01-05")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDate_Invalid(t *testing.T) {
	for _, value := range []string{"", "2025-13-01", "05-01-2025", "2025-01-05T10:00:00Z"} {
		_, err := ParseDate(value)
		assert.Error(t, err, value)
		assert.Contains(t, err.Error(), "invalid date")
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-28", FormatDate(parsed))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}
