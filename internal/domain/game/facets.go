package game

import (
	"strings"

	"github.com/riskibarqy/boxscore/internal/domain/record"
)

// Facets holds the distinct filter values observed across a game collection.
type Facets struct {
	GameTypes []string `json:"gameTypes"`
	Seasons   []string `json:"seasons"`
	Opponents []string `json:"opponents"`
}

// orderedSet keeps distinct values in first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{}), items: []string{}}
}

func (s *orderedSet) add(value string) {
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.items = append(s.items, value)
}

// addEach adds the value of every alias present on rec, so a record carrying
// both casings contributes both. False and zero values are not facets.
func (s *orderedSet) addEach(rec record.Record, aliases record.Aliases) {
	for _, key := range aliases {
		raw := rec[key]
		if !record.Truthy(raw) {
			continue
		}
		value := record.Stringify(raw)
		if strings.TrimSpace(value) == "" {
			continue
		}
		s.add(value)
	}
}

// ExtractFacets collects game types, seasons and opponents in one pass.
func ExtractFacets(games []Game) Facets {
	types := newOrderedSet()
	seasons := newOrderedSet()
	opponents := newOrderedSet()

	for _, g := range games {
		if g.Raw == nil {
			continue
		}
		types.addEach(g.Raw, record.GameType)
		seasons.addEach(g.Raw, record.Season)
		opponents.addEach(g.Raw, record.OpponentTeam)
	}

	return Facets{
		GameTypes: types.items,
		Seasons:   seasons.items,
		Opponents: opponents.items,
	}
}
