package dateparse_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfcarvalho/posto/internal/dateparse"
)

func regional(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(dateparse.RegionalTimezone)
	require.NoError(t, err)

	return loc
}

func TestParse_DayFirstNeverTransposed(t *testing.T) {
	// 05/12/2024 is the 5th of December, never the 12th of May.
	got, defaulted := dateparse.Parse("05/12/2024")
	require.False(t, defaulted)

	local := got.In(regional(t))
	assert.Equal(t, 5, local.Day())
	assert.Equal(t, time.December, local.Month())
	assert.Equal(t, 2024, local.Year())
}

func TestParse_DayFirst(t *testing.T) {
	loc := regional(t)

	type testCase struct {
		name  string
		input string
		want  time.Time
	}

	tests := []testCase{
		{
			name:  "WithTime",
			input: "31/01/2025 14:35:09",
			want:  time.Date(2025, 1, 31, 14, 35, 9, 0, loc),
		},
		{
			name:  "WithoutSeconds",
			input: "31/01/2025 14:35",
			want:  time.Date(2025, 1, 31, 14, 35, 0, 0, loc),
		},
		{
			name:  "WithoutTime",
			input: "31/01/2025",
			want:  time.Date(2025, 1, 31, 0, 0, 0, 0, loc),
		},
		{
			name:  "TwoDigitYear",
			input: "7-3-24",
			want:  time.Date(2024, 3, 7, 0, 0, 0, 0, loc),
		},
		{
			name:  "DashSeparators",
			input: "05-12-2024 08:00",
			want:  time.Date(2024, 12, 5, 8, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted := dateparse.Parse(tt.input)
			require.False(t, defaulted)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParse_YearFirst(t *testing.T) {
	loc := regional(t)

	got, defaulted := dateparse.Parse("2024-12-05 10:30:00")
	require.False(t, defaulted)
	assert.True(t, got.Equal(time.Date(2024, 12, 5, 10, 30, 0, 0, loc)))

	got, defaulted = dateparse.Parse("2024/07/15")
	require.False(t, defaulted)
	assert.True(t, got.Equal(time.Date(2024, 7, 15, 0, 0, 0, 0, loc)))
}

func TestParse_FallbackLayout(t *testing.T) {
	loc := regional(t)

	got, defaulted := dateparse.Parse("05.12.2024")
	require.False(t, defaulted)
	assert.True(t, got.Equal(time.Date(2024, 12, 5, 0, 0, 0, 0, loc)))
}

func TestParse_DefaultsToNow(t *testing.T) {
	type testCase struct {
		name  string
		input string
	}

	tests := []testCase{
		{name: "Empty", input: ""},
		{name: "Whitespace", input: "   "},
		{name: "Garbage", input: "not a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, defaulted := dateparse.Parse(tt.input)
			assert.True(t, defaulted)
			assert.WithinDuration(t, time.Now(), got, 5*time.Second)
		})
	}
}

func TestDayKey_RegionalCivilDay(t *testing.T) {
	// 01:30 UTC is still the previous evening in São Paulo (UTC-3).
	utc := time.Date(2024, 12, 6, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-05", dateparse.DayKey(utc))

	noon := time.Date(2024, 12, 6, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-12-06", dateparse.DayKey(noon))
}

func TestParse_RoundTripsThroughDayKey(t *testing.T) {
	got, defaulted := dateparse.Parse("05/12/2024 23:59")
	require.False(t, defaulted)
	assert.Equal(t, "2024-12-05", dateparse.DayKey(got))
}
