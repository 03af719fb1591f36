package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRest(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{90, "1:30"},
		{125, "2:05"},
		{600, "10:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatRest(tt.seconds))
	}
}

func TestDayKey(t *testing.T) {
	ts := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", DayKey(ts))
}

func TestCalculateEpley1RM(t *testing.T) {
	assert.Equal(t, 0.0, CalculateEpley1RM(100, 0))
	assert.InDelta(t, 133.333, CalculateEpley1RM(100, 10), 0.001)
	// A single rep still gets the Epley bump.
	assert.InDelta(t, 103.333, CalculateEpley1RM(100, 1), 0.001)
}
