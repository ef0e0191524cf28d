package game

import (
	"strings"

	"github.com/riskibarqy/boxscore/internal/domain/gamedate"
	"github.com/riskibarqy/boxscore/internal/domain/record"
)

// Placeholder is shown for statistics the upstream did not report.
const Placeholder = "—"

// Game is a single box-score row as sent by the upstream source.
type Game struct {
	Raw record.Record
}

// FromAny wraps a decoded JSON value; ok is false when it is not an object.
func FromAny(value any) (Game, bool) {
	rec := record.AsRecord(value)
	if rec == nil {
		return Game{}, false
	}
	return Game{Raw: rec}, true
}

// ListFromAny keeps the object entries of a decoded JSON array.
func ListFromAny(items []any) []Game {
	out := make([]Game, 0, len(items))
	for _, item := range items {
		if g, ok := FromAny(item); ok {
			out = append(out, g)
		}
	}
	return out
}

func (g Game) ID() string         { return record.String(g.Raw, record.GameID) }
func (g Game) Date() any          { return record.Resolve(g.Raw, record.GameDate) }
func (g Game) GameType() string   { return record.String(g.Raw, record.GameType) }
func (g Game) Season() string     { return record.String(g.Raw, record.Season) }
func (g Game) Team() string       { return record.String(g.Raw, record.PlayerTeam) }
func (g Game) Opponent() string   { return record.String(g.Raw, record.OpponentTeam) }
func (g Game) SortKey() int64     { return gamedate.SortKey(g.Date()) }
func (g Game) FormatDate() string { return gamedate.Format(g.Date(), "-") }

// Score renders "team - opponent", or the placeholder when neither side is known.
func (g Game) Score() string {
	teamPts := record.String(g.Raw, record.TeamPoints)
	oppPts := record.String(g.Raw, record.OppPoints)
	if !record.Has(g.Raw, record.TeamPoints) && !record.Has(g.Raw, record.OppPoints) {
		return Placeholder
	}
	return teamPts + " - " + oppPts
}

// StatItem is one labelled cell of the stat line.
type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var statColumns = []struct {
	label   string
	aliases record.Aliases
}{
	{"MIN", record.Minutes},
	{"PTS", record.Points},
	{"FG", record.FieldGoals},
	{"3PT", record.ThreePoint},
	{"FT", record.FreeThrows},
	{"REB", record.Rebounds},
	{"AST", record.Assists},
	{"STL", record.Steals},
	{"BLK", record.Blocks},
	{"TO", record.Turnovers},
	{"PF", record.Fouls},
}

// StatLine lists the box-score columns in display order.
func (g Game) StatLine() []StatItem {
	out := make([]StatItem, 0, len(statColumns))
	for _, col := range statColumns {
		value := displayStat(record.Resolve(g.Raw, col.aliases))
		out = append(out, StatItem{Label: col.label, Value: value})
	}
	return out
}

// displayStat renders missing or blank values as the placeholder. A reported
// zero stays "0".
func displayStat(value any) string {
	text := strings.TrimSpace(record.Stringify(value))
	if text == "" {
		return Placeholder
	}
	return text
}
