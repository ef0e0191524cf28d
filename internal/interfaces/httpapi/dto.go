package httpapi

import (
	"github.com/riskibarqy/boxscore/internal/domain/game"
	"github.com/riskibarqy/boxscore/internal/domain/gamedate"
	"github.com/riskibarqy/boxscore/internal/domain/player"
	"github.com/riskibarqy/boxscore/internal/usecase"
)

type rosterEntryDTO struct {
	ID          string         `json:"id"`
	Key         string         `json:"key"`
	DisplayName string         `json:"displayName"`
	Affiliation string         `json:"affiliation,omitempty"`
	Image       string         `json:"image"`
	Record      map[string]any `json:"record"`
}

type playerCardDTO struct {
	ID          string         `json:"id"`
	DisplayName string         `json:"displayName"`
	Profile     player.Profile `json:"profile"`
	LatestGame  *gameDTO       `json:"latestGame"`
}

type gameDTO struct {
	ID       string              `json:"id,omitempty"`
	Date     string              `json:"date"`
	GameType string              `json:"gameType,omitempty"`
	Season   string              `json:"season,omitempty"`
	Team     string              `json:"team,omitempty"`
	Opponent string              `json:"opponent,omitempty"`
	Score    string              `json:"score"`
	Stats    []game.StatItem     `json:"stats"`
	Media    []game.MediaSection `json:"media,omitempty"`
	Record   map[string]any      `json:"record"`
}

type gameFiltersDTO struct {
	GameType string `json:"gameType"`
	Season   string `json:"season"`
	Opponent string `json:"opponent"`
}

type playerGamesDTO struct {
	PlayerID string         `json:"playerId,omitempty"`
	Games    []gameDTO      `json:"games"`
	Facets   game.Facets    `json:"facets"`
	Filters  gameFiltersDTO `json:"filters"`
	Failed   bool           `json:"failed"`
	Message  string         `json:"message,omitempty"`
}

func rosterEntryToDTO(entry usecase.RosterEntry) rosterEntryDTO {
	return rosterEntryDTO{
		ID:          entry.ID,
		Key:         entry.Key,
		DisplayName: entry.DisplayName,
		Affiliation: entry.Affiliation,
		Image:       entry.Image,
		Record:      entry.Player.Raw,
	}
}

func playerCardToDTO(card usecase.PlayerCard) playerCardDTO {
	out := playerCardDTO{
		ID:          card.ID,
		DisplayName: card.DisplayName,
		Profile:     card.Profile,
	}
	if card.LatestGame.Found {
		latest := gameToDTO(card.LatestGame.Game, "/")
		out.LatestGame = &latest
	}
	return out
}

func playerGamesToDTO(view usecase.PlayerGames) playerGamesDTO {
	games := make([]gameDTO, 0, len(view.Games))
	for _, g := range view.Games {
		games = append(games, gameToDTO(g, "-"))
	}

	out := playerGamesDTO{
		PlayerID: view.PlayerID,
		Games:    games,
		Facets:   view.Facets,
		Filters: gameFiltersDTO{
			GameType: view.Filters.GameType,
			Season:   view.Filters.Season,
			Opponent: view.Filters.Opponent,
		},
		Failed: view.Failed,
	}
	if view.Failed {
		out.Message = gamesUnavailableMessage
	}
	return out
}

// gameToDTO renders dates as DD<sep>MM<sep>YYYY.
func gameToDTO(g game.Game, dateSep string) gameDTO {
	return gameDTO{
		ID:       g.ID(),
		Date:     gamedate.Format(g.Date(), dateSep),
		GameType: g.GameType(),
		Season:   g.Season(),
		Team:     g.Team(),
		Opponent: g.Opponent(),
		Score:    g.Score(),
		Stats:    g.StatLine(),
		Media:    g.Media(),
		Record:   g.Raw,
	}
}
