package gamedate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestParseEpochMillis_EpochSecondsStrings(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"0", "1", "86400", "1710460800", "9999999999", " 1700000000 "} {
		got, ok := ParseEpochMillis(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		seconds, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			t.Fatalf("parse fixture %q: %v", raw, err)
		}
		want := seconds * 1000
		if got != want {
			t.Fatalf("ParseEpochMillis(%q)=%d want %d", raw, got, want)
		}
	}
}

func TestParseEpochMillis_LongDigitStringsAreMillis(t *testing.T) {
	t.Parallel()

	got, ok := ParseEpochMillis("1710460800000")
	if !ok || got != 1710460800000 {
		t.Fatalf("unexpected result: %d ok=%v", got, ok)
	}
}

func TestParseEpochMillis_NumbersAreIdentity(t *testing.T) {
	t.Parallel()

	cases := []any{
		float64(1710460800000),
		float64(0),
		float64(-86400000),
		int64(1710460800123),
		42,
		json.Number("1710460800000"),
	}
	want := []int64{1710460800000, 0, -86400000, 1710460800123, 42, 1710460800000}

	for i, raw := range cases {
		got, ok := ParseEpochMillis(raw)
		if !ok || got != want[i] {
			t.Fatalf("ParseEpochMillis(%v)=%d ok=%v want %d", raw, got, ok, want[i])
		}
	}
}

func TestParseEpochMillis_DayFirstAndYearFirstAgree(t *testing.T) {
	t.Parallel()

	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	for _, raw := range []string{"15-03-2024", "15/03/2024", "15/3/2024", "2024-03-15", "2024/03/15", "2024-3-15"} {
		got, ok := ParseEpochMillis(raw)
		if !ok {
			t.Fatalf("expected %q to parse", raw)
		}
		if got != want {
			t.Fatalf("ParseEpochMillis(%q)=%d want %d", raw, got, want)
		}
	}
}

func TestParseEpochMillis_AmbiguousSlashDateIsDayFirst(t *testing.T) {
	t.Parallel()

	got, ok := ParseEpochMillis("05/03/2024")
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC).UnixMilli()
	if !ok || got != want {
		t.Fatalf("expected 5 March 2024, got %d ok=%v", got, ok)
	}
}

func TestParseEpochMillis_GeneralFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-03-15T18:30:00Z", want: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{raw: "2024-03-15T18:30:00.250Z", want: time.Date(2024, 3, 15, 18, 30, 0, 250_000_000, time.UTC)},
		{raw: "2024-03-15T20:30:00+02:00", want: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{raw: "2024-03-15T18:30:00", want: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{raw: "2024-03-15 18:30:00", want: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
		{raw: "March 15, 2024", want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{raw: "Fri, 15 Mar 2024 18:30:00 GMT", want: time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, ok := ParseEpochMillis(tc.raw)
		if !ok {
			t.Fatalf("expected %q to parse", tc.raw)
		}
		if got != tc.want.UnixMilli() {
			t.Fatalf("ParseEpochMillis(%q)=%d want %d", tc.raw, got, tc.want.UnixMilli())
		}
	}
}

func TestParseEpochMillis_CalendarOverflowRollsForward(t *testing.T) {
	t.Parallel()

	got, ok := ParseEpochMillis("31-02-2024")
	want := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	if !ok || got != want {
		t.Fatalf("expected rolled date, got %d ok=%v", got, ok)
	}
}

func TestParseEpochMillis_Unparseable(t *testing.T) {
	t.Parallel()

	cases := []any{nil, "", "   ", "not a date", "15.03.2024", "2024-13-45T99", true, math.NaN(), math.Inf(1), map[string]any{}}
	for _, raw := range cases {
		if _, ok := ParseEpochMillis(raw); ok {
			t.Fatalf("expected %v to be unparseable", raw)
		}
	}
}

func TestSortKey_UnparseableIsZero(t *testing.T) {
	t.Parallel()

	if got := SortKey("garbage"); got != 0 {
		t.Fatalf("expected sentinel 0, got %d", got)
	}
	if got := SortKey("1"); got != 1000 {
		t.Fatalf("expected 1000, got %d", got)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  any
		sep  string
		want string
	}{
		{raw: "2024-03-15", sep: "-", want: "15-03-2024"},
		{raw: "2024-03-15", sep: "/", want: "15/03/2024"},
		{raw: float64(0), sep: "-", want: "01-01-1970"},
		{raw: "", sep: "-", want: ""},
		{raw: nil, sep: "/", want: ""},
		{raw: "TBD/soon", sep: "-", want: "TBD-soon"},
		{raw: "TBD/soon", sep: "/", want: "TBD/soon"},
	}

	for _, tc := range cases {
		if got := Format(tc.raw, tc.sep); got != tc.want {
			t.Fatalf("Format(%v, %q)=%q want %q", tc.raw, tc.sep, got, tc.want)
		}
	}
}
