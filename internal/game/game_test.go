package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"CRANE", "CRANE", false},
		{"crane", "CRANE", false},
		{"  slate \n", "SLATE", false},
		{"", "", true},
		{"CRAN", "", true},
		{"CRANES", "", true},
		{"CR4NE", "", true},
		{"CR NE", "", true},
		{"CRÀNE", "", true},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.raw)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidGuessFormat, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

func TestDateOfBucketsInUTC(t *testing.T) {
	// Late evening in New York is already the next calendar day in UTC.
	ny := time.FixedZone("America/New_York", -5*3600)
	late := time.Date(2026, 3, 1, 23, 30, 0, 0, ny)
	assert.Equal(t, "2026-03-02", DateOf(late))

	utc := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01", DateOf(utc))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-08-29"))
	assert.False(t, ValidDate("29-08-2026"))
	assert.False(t, ValidDate("2026-13-01"))
	assert.False(t, ValidDate("not-a-date"))
}
