package record

import (
	"encoding/json"
	"math"
	"testing"
)

func TestResolve_FirstPresentAliasWins(t *testing.T) {
	t.Parallel()

	rec := Record{"playerID": "p-2", "PlayerId": "p-4"}
	if got := Resolve(rec, PlayerID); got != "p-2" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestResolve_SkipsNilValues(t *testing.T) {
	t.Parallel()

	rec := Record{"PlayerID": nil, "playerId": float64(17)}
	if got := Resolve(rec, PlayerID); got != float64(17) {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestResolve_EmptyStringIsPresent(t *testing.T) {
	t.Parallel()

	rec := Record{"gameType": "", "GameType": "Playoffs"}
	if got := Resolve(rec, GameType); got != "" {
		t.Fatalf("expected empty string to win, got %v", got)
	}
}

func TestResolve_NilRecordAndNoMatch(t *testing.T) {
	t.Parallel()

	if got := Resolve(nil, PlayerID); got != nil {
		t.Fatalf("expected nil for nil record, got %v", got)
	}
	if got := Resolve(Record{"playerid": "x"}, PlayerID); got != nil {
		t.Fatalf("alias match must be case-sensitive, got %v", got)
	}
}

func TestString_FormatsNumbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "whole float", value: float64(2024), want: "2024"},
		{name: "fraction", value: 12.5, want: "12.5"},
		{name: "int", value: 7, want: "7"},
		{name: "string", value: "7-12", want: "7-12"},
		{name: "bool", value: true, want: "true"},
		{name: "nil", value: nil, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Stringify(tc.value); got != tc.want {
				t.Fatalf("Stringify(%v)=%q want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestMapAndSlice(t *testing.T) {
	t.Parallel()

	rec := Record{
		"socialLinks": map[string]any{"twitter": "@ace"},
		"games":       []any{map[string]any{"gameDate": "2024-01-01"}},
	}
	if got := String(Map(rec, SocialLinks), Twitter); got != "@ace" {
		t.Fatalf("unexpected twitter handle: %q", got)
	}
	if got := len(Slice(rec, Games)); got != 1 {
		t.Fatalf("expected one nested game, got %d", got)
	}
	if Slice(Record{"games": "nope"}, Games) != nil {
		t.Fatalf("expected nil slice for non-array value")
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	falsy := []any{nil, false, "", float64(0), math.NaN(), 0, json.Number("0")}
	for _, v := range falsy {
		if Truthy(v) {
			t.Fatalf("expected %#v to be falsy", v)
		}
	}
	truthy := []any{true, " ", "Regular", float64(2024), json.Number("1.5"), map[string]any{}}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Fatalf("expected %#v to be truthy", v)
		}
	}
}
