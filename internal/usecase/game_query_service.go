package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/boxscore/internal/domain/game"
)

type GameQueryService struct {
	source DataSource
}

func NewGameQueryService(source DataSource) *GameQueryService {
	return &GameQueryService{source: source}
}

// QueryGames fetches a player's games with the non-empty filters applied and
// returns them newest first. A body that is not a list yields an empty
// result; a failed request yields an empty result and ErrGamesUnavailable.
func (s *GameQueryService) QueryGames(ctx context.Context, playerID string, filters GameFilters) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameQueryService.QueryGames")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return []game.Game{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	body, err := s.source.GetGames(ctx, playerID, filters.Normalize())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return []game.Game{}, ctxErr
		}
		return []game.Game{}, fmt.Errorf("%w: player=%s: %w", ErrGamesUnavailable, playerID, err)
	}

	items, ok := body.([]any)
	if !ok {
		return []game.Game{}, nil
	}
	return game.SortDescending(game.ListFromAny(items)), nil
}
