package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/boxscore/internal/usecase"
)

const gamesUnavailableMessage = "Failed to load games."

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	entries, err := h.playerService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, rosterEntryToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerDetails")
	defer span.End()

	req := playerKeyRequest{NameKey: strings.TrimSpace(r.PathValue("nameKey"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	cards, err := h.playerService.GetPlayerDetails(ctx, req.NameKey)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger.WarnContext(ctx, "get player details failed", "name_key", req.NameKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerCardDTO, 0, len(cards))
	for _, card := range cards {
		items = append(items, playerCardToDTO(card))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerGames")
	defer span.End()

	query := r.URL.Query()
	req := playerGamesRequest{
		NameKey: strings.TrimSpace(r.PathValue("nameKey")),
		Filters: usecase.GameFilters{
			GameType: query.Get("gameType"),
			Season:   query.Get("season"),
			Opponent: query.Get("opponent"),
		}.Normalize(),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.playerService.GetPlayerGames(ctx, req.NameKey, req.Filters)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger.WarnContext(ctx, "get player games failed", "name_key", req.NameKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerGamesToDTO(view))
}

// GetPlayerLatestGames exposes the per-player latest game mapping of one
// details lookup; ids without a game map to null.
func (h *Handler) GetPlayerLatestGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerLatestGames")
	defer span.End()

	req := playerKeyRequest{NameKey: strings.TrimSpace(r.PathValue("nameKey"))}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	cards, err := h.playerService.GetPlayerDetails(ctx, req.NameKey)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger.WarnContext(ctx, "get latest games failed", "name_key", req.NameKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string]any, len(cards))
	for _, card := range cards {
		if card.Player.ID() == "" {
			continue
		}
		if card.LatestGame.Found {
			out[card.ID] = map[string]any(card.LatestGame.Game.Raw)
			continue
		}
		out[card.ID] = nil
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
