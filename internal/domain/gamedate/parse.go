package gamedate

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	digitsOnly = regexp.MustCompile(`^\d+$`)
	dayFirst   = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})$`)
	yearFirst  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
)

// epochSecondsMaxLen is the longest digit string still read as seconds.
const epochSecondsMaxLen = 10

// generalLayouts are tried in order for free-form text. Numeric day/month
// forms are deliberately absent: those are handled day-first further down.
var generalLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.RFC822,
	time.RFC822Z,
	time.ANSIC,
	time.UnixDate,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
	"Mon, 02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ParseEpochMillis converts a heterogeneous date value into UTC epoch
// milliseconds. The boolean is false when the value cannot be parsed.
func ParseEpochMillis(raw any) (int64, bool) {
	switch typed := raw.(type) {
	case nil:
		return 0, false
	case string:
		return parseText(typed)
	case json.Number:
		if v, err := typed.Int64(); err == nil {
			return v, true
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return fromFloat(f)
	case float64:
		return fromFloat(typed)
	case float32:
		return fromFloat(float64(typed))
	case int:
		return int64(typed), true
	case int32:
		return int64(typed), true
	case int64:
		return typed, true
	case uint32:
		return int64(typed), true
	default:
		return 0, false
	}
}

// SortKey is the ordering key of a date value: the parsed instant, or 0 when
// the value is unparseable.
func SortKey(raw any) int64 {
	millis, ok := ParseEpochMillis(raw)
	if !ok {
		return 0
	}
	return millis
}

func parseText(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	if digitsOnly.MatchString(trimmed) {
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return 0, false
		}
		if len(trimmed) <= epochSecondsMaxLen {
			return n * 1000, true
		}
		return n, true
	}

	for _, layout := range generalLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed.UnixMilli(), true
		}
	}

	if m := dayFirst.FindStringSubmatch(trimmed); m != nil {
		return utcMidnight(m[3], m[2], m[1]), true
	}
	if m := yearFirst.FindStringSubmatch(trimmed); m != nil {
		return utcMidnight(m[1], m[2], m[3]), true
	}

	return 0, false
}

// utcMidnight builds the calendar date with overflowing components rolled
// forward, e.g. 31-02-2024 becomes 2024-03-02.
func utcMidnight(year, month, day string) int64 {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC).UnixMilli()
}

func fromFloat(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if v > math.MaxInt64 || v < math.MinInt64 {
		return 0, false
	}
	return int64(v), true
}
