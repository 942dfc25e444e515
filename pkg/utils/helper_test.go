package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowLimit(t *testing.T) {
	cases := map[string]int{
		"":     50,
		"abc":  50,
		"5000": 1000,
		"0":    1,
		"-3":   1,
		"1":    1,
		"1000": 1000,
		"25":   25,
		" 7 ":  7,
		"+12":  12,

		"99999999999999999999":  1000,
		"-99999999999999999999": 1,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseRowLimit(in), "input %q", in)
	}
}

func TestParseOptionalInt(t *testing.T) {
	n, err := ParseOptionalInt("  ")
	require.NoError(t, err)
	assert.Nil(t, n)

	n, err = ParseOptionalInt("2")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 2, *n)

	_, err = ParseOptionalInt("two")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("2026-03-01T09:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), got)

	got, err = ParseDateTime("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDateTime("tomorrow")
	assert.Error(t, err)
}

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2026, 10, 16, 0, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), DateOnly(in))
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("secret124", hash))
}

func TestFormatValidationErrorsIsSorted(t *testing.T) {
	out := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", out)
}
