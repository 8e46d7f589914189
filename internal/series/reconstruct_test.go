package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(n int, base int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = base + int64(i)
	}
	return out
}

func TestReconstruct_FullDayStartsNowMinus24h(t *testing.T) {
	now := time.Date(2024, 3, 14, 17, 55, 0, 0, time.UTC)

	points := Reconstruct(samples(144, 100), samples(144, 0), now)

	require.Len(t, points, 144)
	// now-24h is 17:55 the previous day
	assert.Equal(t, "5:55 PM", points[0].Label)
	assert.Equal(t, "6:05 PM", points[1].Label)
	assert.Equal(t, int64(100), points[0].Total)
	assert.Equal(t, int64(0), points[0].Blocked)
	// 144 buckets of 10 minutes wrap exactly back to the start label
	assert.Equal(t, "5:45 PM", points[143].Label)
}

func TestReconstruct_PartialDayStartsAtMidnight(t *testing.T) {
	now := time.Date(2024, 3, 14, 17, 55, 0, 0, time.UTC)

	points := Reconstruct(samples(3, 10), samples(3, 1), now)

	require.Len(t, points, 3)
	assert.Equal(t, "12:00 AM", points[0].Label)
	assert.Equal(t, "12:10 AM", points[1].Label)
	assert.Equal(t, "12:20 AM", points[2].Label)
}

func TestReconstruct_TruncatesToShorterSeries(t *testing.T) {
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	points := Reconstruct(samples(50, 0), samples(80, 0), now)
	assert.Len(t, points, 50)

	points = Reconstruct(samples(80, 0), samples(50, 0), now)
	assert.Len(t, points, 50)
}

func TestReconstruct_Empty(t *testing.T) {
	now := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)

	points := Reconstruct(nil, nil, now)
	assert.NotNil(t, points)
	assert.Len(t, points, 0)
}

func TestReconstruct_LabelFormat(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		minute   int
		expected string
	}{
		{"midnight", 0, 0, "12:00 AM"},
		{"noon", 12, 0, "12:00 PM"},
		{"afternoon", 13, 5, "1:05 PM"},
		{"evening", 17, 55, "5:55 PM"},
		{"morning single digit minute", 9, 5, "9:05 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2024, 3, 14, tt.hour, tt.minute, 0, 0, time.UTC)
			assert.Equal(t, tt.expected, ts.Format("3:04 PM"))
		})
	}
}

func TestReconstruct_TenMinuteCadence(t *testing.T) {
	// 7 buckets starting at midnight: 12:00, 12:10, ... 1:00
	now := time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)

	points := Reconstruct(samples(7, 0), samples(7, 0), now)

	require.Len(t, points, 7)
	expected := []string{"12:00 AM", "12:10 AM", "12:20 AM", "12:30 AM", "12:40 AM", "12:50 AM", "1:00 AM"}
	for i, p := range points {
		assert.Equal(t, expected[i], p.Label)
	}
}
