package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("90m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}

func TestParseDate(t *testing.T) {
	fallback := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	parsed := ParseDate("2026-09-15", fallback)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed = ParseDate("2026-09-15T18:30:00Z", fallback)
	assert.Equal(t, time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC), parsed)

	assert.Equal(t, fallback, ParseDate("", fallback))
	assert.Equal(t, fallback, ParseDate("15/09/2026", fallback))
}
