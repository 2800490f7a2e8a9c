package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRFC3339RoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	formatted := FormatRFC3339(now)
	assert.Equal(t, "2026-08-28T10:30:00Z", formatted)
	assert.True(t, now.Equal(ParseRFC3339(formatted)))
}

func TestParseRFC3339_Invalid(t *testing.T) {
	assert.True(t, ParseRFC3339("not-a-timestamp").IsZero())
	assert.True(t, ParseRFC3339("").IsZero())
}
