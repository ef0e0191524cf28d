package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/boxscore/internal/domain/game"
	"github.com/riskibarqy/boxscore/internal/domain/record"
	"github.com/riskibarqy/boxscore/internal/platform/logging"
)

// LatestGame is the outcome for one player: either a game or an explicit
// "none found".
type LatestGame struct {
	Game  game.Game
	Found bool
}

// LatestGameResult maps player ids to their resolved latest game. It is built
// once per batch and replaced, never merged, by the next one.
type LatestGameResult map[string]LatestGame

// Lookup returns the game for id; resolved is false when id was not part of
// the batch at all.
func (r LatestGameResult) Lookup(id string) (g game.Game, found bool, resolved bool) {
	item, ok := r[id]
	if !ok {
		return game.Game{}, false, false
	}
	return item.Game, item.Found, true
}

type payloadKind int

const (
	payloadUnknown payloadKind = iota
	payloadList
	payloadWrapped
	payloadSingle
)

// latestPayload is the canonical form of a "latest game" response body.
type latestPayload struct {
	kind   payloadKind
	games  []game.Game
	single game.Game
}

// classifyPayload discriminates the shapes upstream sources use: a bare
// array, an object wrapping a games array, or a single game object.
func classifyPayload(body any) latestPayload {
	switch typed := body.(type) {
	case []any:
		return latestPayload{kind: payloadList, games: game.ListFromAny(typed)}
	case map[string]any:
		rec := record.Record(typed)
		if nested, ok := record.Resolve(rec, record.Games).([]any); ok {
			return latestPayload{kind: payloadWrapped, games: game.ListFromAny(nested)}
		}
		return latestPayload{kind: payloadSingle, single: game.Game{Raw: rec}}
	default:
		return latestPayload{kind: payloadUnknown}
	}
}

type LatestGameResolver struct {
	source DataSource
	pool   *ants.Pool
	logger *logging.Logger
}

// NewLatestGameResolver builds a resolver. pool bounds the fan-out of batch
// resolutions across all callers; a nil pool resolves batches with one
// goroutine per player.
func NewLatestGameResolver(source DataSource, pool *ants.Pool, logger *logging.Logger) *LatestGameResolver {
	if logger == nil {
		logger = logging.Default()
	}
	return &LatestGameResolver{
		source: source,
		pool:   pool,
		logger: logger,
	}
}

// ResolveLatest determines the most recent game of a player. Absence, request
// failures and unrecognized payloads all yield found=false.
func (r *LatestGameResolver) ResolveLatest(ctx context.Context, playerID string) (game.Game, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LatestGameResolver.ResolveLatest")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return game.Game{}, false
	}

	body, err := r.source.GetLatestGame(ctx, playerID)
	if err != nil {
		r.logger.DebugContext(ctx, "latest game unavailable", "player_id", playerID, "error", err)
		return game.Game{}, false
	}

	payload := classifyPayload(body)
	switch payload.kind {
	case payloadList, payloadWrapped:
		return game.Latest(payload.games)
	case payloadSingle:
		return r.verifySingle(ctx, playerID, payload.single)
	default:
		r.logger.DebugContext(ctx, "latest game payload has unknown shape", "player_id", playerID)
		return game.Game{}, false
	}
}

// verifySingle checks a lone game object against the player's full history.
// When the history cannot be loaded or is empty the lone object is returned
// as is, even though it was never confirmed to be the newest.
func (r *LatestGameResolver) verifySingle(ctx context.Context, playerID string, single game.Game) (game.Game, bool) {
	body, err := r.source.GetGames(ctx, playerID, GameFilters{})
	if err != nil {
		r.logger.DebugContext(ctx, "games fallback failed, keeping single latest game", "player_id", playerID, "error", err)
		return single, true
	}

	payload := classifyPayload(body)
	if payload.kind != payloadList && payload.kind != payloadWrapped {
		return single, true
	}
	if latest, ok := game.Latest(payload.games); ok {
		return latest, true
	}
	return single, true
}

type latestOutcome struct {
	id    string
	game  game.Game
	found bool
}

// ResolveBatch resolves every player concurrently. The mapping is returned
// only once all resolutions finished; when ctx is cancelled first, nothing is
// published and ctx.Err() is returned.
func (r *LatestGameResolver) ResolveBatch(ctx context.Context, playerIDs []string) (LatestGameResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LatestGameResolver.ResolveBatch")
	defer span.End()

	ids := uniqueIDs(playerIDs)
	outcomes := make([]latestOutcome, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			g, found := r.ResolveLatest(ctx, id)
			outcomes[i] = latestOutcome{id: id, game: g, found: found}
		}
		if r.pool == nil {
			go task()
			continue
		}
		if err := r.pool.Submit(task); err != nil {
			r.logger.WarnContext(ctx, "latest game pool rejected task, resolving inline", "player_id", id, "error", err)
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make(LatestGameResult, len(outcomes))
	for _, item := range outcomes {
		out[item.id] = LatestGame{Game: item.game, Found: item.found}
	}
	return out, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
