// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/daybook/internal/calendar"
	"github.com/taibuivan/daybook/internal/platform/apperr"
)

/*
TestParseDate covers accepted and rejected reference date strings.
*/
func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"valid_monday", "10.02.2025", true},
		{"leap_day", "29.02.2024", true},
		{"not_a_leap_day", "29.02.2025", false},
		{"day_overflow", "31.04.2025", false},
		{"iso_format", "2025-02-10", false},
		{"single_digit_fields", "1.2.2025", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := calendar.ParseDate(tt.value)
			if tt.isValid {
				require.NoError(t, err)
				assert.Equal(t, tt.value, calendar.Format(parsed))
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeInvalidDateFormat))
		})
	}
}

/*
TestResolveString_KnownDates checks concrete resolutions against a printed calendar.
*/
func TestResolveString_KnownDates(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		week int
		day  int
		want string
	}{
		{"reference_is_monday", "10.02.2025", 1, 1, "10.02.2025"},
		{"next_week_wednesday", "10.02.2025", 2, 3, "19.02.2025"},
		{"mid_week_reference_rolls_back", "13.02.2025", 1, 1, "10.02.2025"},
		{"sunday_reference", "16.02.2025", 1, 7, "16.02.2025"},
		{"crosses_year", "29.12.2025", 1, 4, "01.01.2026"},
		{"week_52", "10.02.2025", 52, 5, "06.02.2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.ResolveString(tt.ref, tt.week, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestResolve_Properties exercises the algebraic properties of the resolver over a year of references.
*/
func TestResolve_Properties(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for offset := 0; offset < 366; offset++ {
		ref := start.AddDate(0, 0, offset)

		// The reference date resolves to itself in week 1.
		self, err := calendar.Resolve(ref, 1, calendar.ISOWeekday(ref))
		require.NoError(t, err)
		require.True(t, self.Equal(ref), "ref %s resolved to %s", calendar.Format(ref), calendar.Format(self))

		for week := 1; week <= 3; week++ {
			monday, err := calendar.Resolve(ref, week, calendar.Monday)
			require.NoError(t, err)
			require.Equal(t, time.Monday, monday.Weekday())

			for day := calendar.Monday; day <= calendar.Sunday; day++ {
				current, err := calendar.Resolve(ref, week, day)
				require.NoError(t, err)
				next, err := calendar.Resolve(ref, week+1, day)
				require.NoError(t, err)
				require.Equal(t, current.AddDate(0, 0, 7), next)
			}
		}
	}
}

/*
TestResolve_InvalidRange verifies that out-of-domain coordinates are rejected.
*/
func TestResolve_InvalidRange(t *testing.T) {
	ref, err := calendar.ParseDate("10.02.2025")
	require.NoError(t, err)

	tests := []struct {
		name string
		week int
		day  int
	}{
		{"day_zero", 1, 0},
		{"day_eight", 1, 8},
		{"week_zero", 0, 1},
		{"negative_week", -3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.Resolve(ref, tt.week, tt.day)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeInvalidRange))
		})
	}
}

/*
TestResolve_IgnoresLocation ensures resolution is by calendar day even across DST changes.
*/
func TestResolve_IgnoresLocation(t *testing.T) {
	location, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		t.Skip("tzdata not available")
	}

	ref := time.Date(2025, time.March, 24, 0, 0, 0, 0, location)
	got, err := calendar.Resolve(ref, 1, calendar.Sunday)
	require.NoError(t, err)
	assert.Equal(t, "30.03.2025", calendar.Format(got))
	assert.Equal(t, 0, got.Hour())
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Monday", calendar.WeekdayName(1))
	assert.Equal(t, "Sunday", calendar.WeekdayName(7))
	assert.Empty(t, calendar.WeekdayName(0))
	assert.Empty(t, calendar.WeekdayName(8))
}
