// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// Tests for load parsing

package datatypes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoad_ParsesNumericAndDateFields(t *testing.T) {
	l := NewLoad(map[string]string{
		"load_id":         "L-100",
		"origin":          "Chicago, IL",
		"loadboard_rate":  "1850.50",
		"pickup_datetime": "2025-11-24T08:00:00",
		"miles":           "920.0",
		"weight":          "42000",
	})

	rate, ok := l.Rate()
	require.True(t, ok)
	assert.InDelta(t, 1850.50, rate, 1e-9)
	assert.InDelta(t, 1850.50, l.SortRate(), 1e-9)

	pickup, ok := l.PickupTime()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC), pickup)

	miles, ok := l.MilesCount()
	require.True(t, ok)
	assert.Equal(t, 920, miles)

	weight, ok := l.WeightPounds()
	require.True(t, ok)
	assert.Equal(t, 42000, weight)
}

// Junk columns keep their raw strings but parse as absent; the load still
// searches and sorts (at rate 0).
func TestNewLoad_UnparsableFieldsDegrade(t *testing.T) {
	l := NewLoad(map[string]string{
		"load_id":         "L-101",
		"loadboard_rate":  "call for rate",
		"pickup_datetime": "whenever",
		"miles":           "n/a",
	})

	assert.Equal(t, "call for rate", l.LoadboardRate)

	_, ok := l.Rate()
	assert.False(t, ok)
	assert.Zero(t, l.SortRate())

	_, ok = l.PickupTime()
	assert.False(t, ok)

	_, ok = l.MilesCount()
	assert.False(t, ok)
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{" 1500.75 ", 1500.75, true},
		{"", 0, false},
		{"$1500", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseRate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, tt.in)
	}
}

func TestParseWholeNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"920", 920, true},
		{"920.0", 920, true},
		{" 42000 ", 42000, true},
		{"", 0, false},
		{"many", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseWholeNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDatetime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
		ok   bool
	}{
		{"datetime with seconds", "2025-11-24T08:00:00",
			time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC), true},
		{"datetime without seconds", "2025-11-24T08:00",
			time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC), true},
		{"rfc3339 with offset", "2025-11-24T08:00:00Z",
			time.Date(2025, 11, 24, 8, 0, 0, 0, time.UTC), true},
		{"bare date", "2025-11-24",
			time.Date(2025, 11, 24, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "tomorrow", time.Time{}, false},
		{"T but malformed", "2025-11-24Tnoon", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDatetime(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}
