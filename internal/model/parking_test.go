package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationMinutes_PositiveInterval(t *testing.T) {
	start := time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC)
	p := ParkingEntry{StartTime: start, EndTime: start.Add(9*time.Hour + 30*time.Minute)}

	assert.True(t, p.HasDuration())
	assert.Equal(t, int64(570), p.DurationMinutes())
	assert.Equal(t, "9h 30m", p.FormatDuration())
}

func TestDurationMinutes_NeverNegative(t *testing.T) {
	start := time.Date(2025, 3, 1, 21, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		entry ParkingEntry
	}{
		{"end before start", ParkingEntry{StartTime: start, EndTime: start.Add(-time.Hour)}},
		{"end equals start", ParkingEntry{StartTime: start, EndTime: start}},
		{"missing end", ParkingEntry{StartTime: start}},
		{"missing start", ParkingEntry{EndTime: start}},
		{"both missing", ParkingEntry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tt.entry.HasDuration())
			assert.Equal(t, int64(0), tt.entry.DurationMinutes())
			assert.Equal(t, DurationPlaceholder, tt.entry.FormatDuration())
		})
	}
}

func TestDurationMinutes_RoundsToNearest(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	p := ParkingEntry{StartTime: start, EndTime: start.Add(10*time.Minute + 40*time.Second)}
	assert.Equal(t, int64(11), p.DurationMinutes())
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{570, "9h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
	}
}
