package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/boxscore/internal/domain/game"
	"github.com/riskibarqy/boxscore/internal/domain/player"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// RosterEntry is one row of the player directory.
type RosterEntry struct {
	Player      player.Player
	ID          string
	DisplayName string
	Affiliation string
	Key         string
	Image       string
}

// PlayerCard is one record of a player's details page together with its
// resolved latest game.
type PlayerCard struct {
	Player      player.Player
	ID          string
	DisplayName string
	Profile     player.Profile
	LatestGame  LatestGame
}

// PlayerGames is the game log view of a player.
type PlayerGames struct {
	PlayerID string
	Games    []game.Game
	Facets   game.Facets
	Filters  GameFilters
	// Failed is set when the filtered query could not be loaded, which is
	// distinct from a query that legitimately matched nothing.
	Failed bool
}

type PlayerService struct {
	source   DataSource
	resolver *LatestGameResolver
	games    *GameQueryService
	images   player.ImageResolver
	logger   *logging.Logger
}

func NewPlayerService(
	source DataSource,
	resolver *LatestGameResolver,
	games *GameQueryService,
	images player.ImageResolver,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		source:   source,
		resolver: resolver,
		games:    games,
		images:   images,
		logger:   logger,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]RosterEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	body, err := s.source.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	items, _ := body.([]any)
	players := player.ListFromAny(items)
	out := make([]RosterEntry, 0, len(players))
	for i, p := range players {
		out = append(out, RosterEntry{
			Player:      p,
			ID:          p.IDOrFallback(i),
			DisplayName: p.DisplayName(),
			Affiliation: p.Affiliation(),
			Key:         p.CombinedKey(),
			Image:       s.images.Resolve(p.ImageRef()),
		})
	}
	return out, nil
}

// GetPlayerDetails loads every record matching nameKey and resolves the latest
// game of each identified record in one batch.
func (s *PlayerService) GetPlayerDetails(ctx context.Context, nameKey string) ([]PlayerCard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerDetails")
	defer span.End()

	key, err := normalizeNameKey(nameKey)
	if err != nil {
		return nil, err
	}

	players, err := s.loadDetails(ctx, key)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(players))
	for _, p := range players {
		if id := p.ID(); id != "" {
			ids = append(ids, id)
		}
	}

	latest, err := s.resolver.ResolveBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve latest games: %w", err)
	}

	out := make([]PlayerCard, 0, len(players))
	for i, p := range players {
		id := p.IDOrFallback(i)
		g, found, _ := latest.Lookup(id)
		profile := p.Profile()
		profile.Image = s.images.Resolve(profile.Image)
		out = append(out, PlayerCard{
			Player:      p,
			ID:          id,
			DisplayName: p.DisplayName(),
			Profile:     profile,
			LatestGame:  LatestGame{Game: g, Found: found},
		})
	}
	return out, nil
}

// GetPlayerGames builds the game log of the first record matching nameKey.
// A key without an identified record yields an empty view.
// Facet options always come from the unfiltered collection so that selecting
// one filter never hides the other choices.
func (s *PlayerService) GetPlayerGames(ctx context.Context, nameKey string, filters GameFilters) (PlayerGames, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerGames")
	defer span.End()

	filters = filters.Normalize()
	view := PlayerGames{
		Games:   []game.Game{},
		Facets:  game.ExtractFacets(nil),
		Filters: filters,
	}

	key, err := normalizeNameKey(nameKey)
	if err != nil {
		return view, err
	}

	players, err := s.loadDetails(ctx, key)
	if err != nil {
		return view, err
	}
	if len(players) == 0 {
		return view, nil
	}
	playerID := players[0].ID()
	if playerID == "" {
		return view, nil
	}
	view.PlayerID = playerID

	var (
		wg          conc.WaitGroup
		all         []game.Game
		allErr      error
		filtered    []game.Game
		filteredErr error
	)
	wg.Go(func() {
		all, allErr = s.games.QueryGames(ctx, playerID, GameFilters{})
	})
	if !filters.IsEmpty() {
		wg.Go(func() {
			filtered, filteredErr = s.games.QueryGames(ctx, playerID, filters)
		})
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return view, err
	}
	if filters.IsEmpty() {
		filtered, filteredErr = all, allErr
	}

	if allErr != nil {
		s.logger.WarnContext(ctx, "load unfiltered games failed", "player_id", playerID, "error", allErr)
	} else {
		view.Facets = game.ExtractFacets(all)
	}

	if filteredErr != nil {
		if !errors.Is(filteredErr, ErrGamesUnavailable) {
			return view, filteredErr
		}
		s.logger.WarnContext(ctx, "load games failed", "player_id", playerID, "error", filteredErr)
		view.Failed = true
		return view, nil
	}
	view.Games = filtered
	return view, nil
}

func (s *PlayerService) loadDetails(ctx context.Context, key string) ([]player.Player, error) {
	body, err := s.source.GetPlayerDetails(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get player details: %w", err)
	}
	items, _ := body.([]any)
	return player.ListFromAny(items), nil
}

func normalizeNameKey(raw string) (string, error) {
	key := player.NormalizeKey(strings.TrimSpace(raw))
	if key == "" {
		return "", fmt.Errorf("%w: player key is required", ErrInvalidInput)
	}
	return key, nil
}
