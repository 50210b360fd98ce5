// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package calendar resolves abstract (week, weekday) coordinates into concrete dates.

A daybook is anchored on a reference date. Week 1 is the ISO week (Monday to
Sunday) that contains the reference date; every other week is counted forward
from it. Day-of-month never influences week boundaries.

Usage:

	ref, err := calendar.ParseDate("10.02.2025")
	if err != nil {
	    return err
	}
	wednesday, err := calendar.Resolve(ref, 2, 3) // 19.02.2025

All functions are pure and safe for concurrent use.
*/
package calendar

import (
	"time"

	"github.com/taibuivan/daybook/internal/platform/apperr"
)

// # Constants

// Layout is the fixed dd.mm.yyyy date convention used for input and labels.
const Layout = "02.01.2006"

const (
	// Monday is the first ISO weekday.
	Monday = 1
	// Sunday is the last ISO weekday.
	Sunday = 7
	// DaysPerWeek is the number of weekdays in a calendar week.
	DaysPerWeek = 7
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// # Parsing & Formatting

// ParseDate parses a dd.mm.yyyy string into a date at midnight UTC.
//
// Impossible dates such as 31.02.2025 are rejected rather than normalized.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, apperr.InvalidDateFormat(value, err)
	}
	return parsed, nil
}

// Format renders t using the dd.mm.yyyy convention.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// # Resolution

// ISOWeekday returns the ISO weekday of t: 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%DaysPerWeek + 1
}

// StartOfWeek rolls t back to the Monday on or before it.
func StartOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -(ISOWeekday(t) - 1))
}

// Resolve returns the date of the given weekday in the given week, counting
// week 1 as the week that contains ref.
//
// # Errors
//
//   - INVALID_RANGE when week < 1 or day is outside [1, 7].
func Resolve(ref time.Time, week, day int) (time.Time, error) {
	if week < 1 {
		return time.Time{}, apperr.InvalidRange("week", week, 1, 0)
	}
	if day < Monday || day > Sunday {
		return time.Time{}, apperr.InvalidRange("day", day, Monday, Sunday)
	}

	// AddDate works on calendar days, so DST shifts in local zones cannot skew the result.
	return StartOfWeek(ref).AddDate(0, 0, (week-1)*DaysPerWeek+(day-1)), nil
}

// ResolveString parses ref, resolves (week, day) and formats the result as dd.mm.yyyy.
func ResolveString(ref string, week, day int) (string, error) {
	parsed, err := ParseDate(ref)
	if err != nil {
		return "", err
	}

	resolved, err := Resolve(parsed, week, day)
	if err != nil {
		return "", err
	}

	return Format(resolved), nil
}

// WeekdayName returns the English name of an ISO weekday, or "" if day is out of range.
func WeekdayName(day int) string {
	if day < Monday || day > Sunday {
		return ""
	}
	return weekdayNames[day]
}
