package gamedate

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/boxscore/internal/domain/record"
)

// Format renders a date value as DD<sep>MM<sep>YYYY in UTC. Values that do
// not parse are returned as text, with slashes normalized when sep is "-".
func Format(raw any, sep string) string {
	if raw == nil {
		return ""
	}
	if text, ok := raw.(string); ok && strings.TrimSpace(text) == "" {
		return ""
	}

	millis, ok := ParseEpochMillis(raw)
	if !ok {
		text := record.Stringify(raw)
		if sep == "-" {
			return strings.ReplaceAll(text, "/", "-")
		}
		return text
	}

	t := time.UnixMilli(millis).UTC()
	return fmt.Sprintf("%02d%s%02d%s%04d", t.Day(), sep, int(t.Month()), sep, t.Year())
}
