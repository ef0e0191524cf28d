package game

import "sort"

type keyedGame struct {
	key  int64
	game Game
}

// SortDescending returns a new slice ordered newest first. Games whose date is
// missing or unparseable share the sentinel key 0 and end up after every
// positively dated game; the order among equal keys is unspecified.
func SortDescending(games []Game) []Game {
	keyed := make([]keyedGame, 0, len(games))
	for _, g := range games {
		keyed = append(keyed, keyedGame{key: g.SortKey(), game: g})
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		return keyed[i].key > keyed[j].key
	})

	out := make([]Game, 0, len(keyed))
	for _, item := range keyed {
		out = append(out, item.game)
	}
	return out
}

// Latest returns the newest game, or false for an empty list.
func Latest(games []Game) (Game, bool) {
	if len(games) == 0 {
		return Game{}, false
	}
	return SortDescending(games)[0], true
}
