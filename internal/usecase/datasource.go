package usecase

import (
	"context"
	"strings"
)

// DataSource is the upstream box-score provider. Every method returns the
// decoded JSON body untouched so callers can discriminate its shape. A
// missing resource is reported as ErrNotFound, any other failure as
// ErrDependencyUnavailable.
type DataSource interface {
	ListPlayers(ctx context.Context) (any, error)
	GetPlayerDetails(ctx context.Context, nameKey string) (any, error)
	GetLatestGame(ctx context.Context, playerID string) (any, error)
	GetGames(ctx context.Context, playerID string, filters GameFilters) (any, error)
}

// GameFilters are optional equality constraints applied by the upstream.
// An empty value means "no constraint" for that facet.
type GameFilters struct {
	GameType string `json:"gameType,omitempty" validate:"max=64"`
	Season   string `json:"season,omitempty" validate:"max=32"`
	Opponent string `json:"opponent,omitempty" validate:"max=128"`
}

// Normalize trims every value so blank selections turn into "no constraint".
func (f GameFilters) Normalize() GameFilters {
	return GameFilters{
		GameType: strings.TrimSpace(f.GameType),
		Season:   strings.TrimSpace(f.Season),
		Opponent: strings.TrimSpace(f.Opponent),
	}
}

// IsEmpty reports whether no facet is constrained.
func (f GameFilters) IsEmpty() bool {
	n := f.Normalize()
	return n.GameType == "" && n.Season == "" && n.Opponent == ""
}
