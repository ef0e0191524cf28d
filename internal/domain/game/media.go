package game

import "github.com/riskibarqy/boxscore/internal/domain/record"

// MediaItem is a single attachment; bare URL strings carry no title.
type MediaItem struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// MediaSection is a labelled media collection of a game.
type MediaSection struct {
	Label string      `json:"label"`
	Items []MediaItem `json:"items"`
}

var mediaSections = []struct {
	label   string
	aliases record.Aliases
}{
	{"Full game", record.FullGameVideo},
	{"Highlights", record.Highlights},
	{"Interviews", record.Interviews},
}

// Media returns the non-empty media sections in display order.
func (g Game) Media() []MediaSection {
	out := make([]MediaSection, 0, len(mediaSections))
	for _, section := range mediaSections {
		items := parseMediaItems(record.Slice(g.Raw, section.aliases))
		if len(items) == 0 {
			continue
		}
		out = append(out, MediaSection{Label: section.label, Items: items})
	}
	return out
}

func parseMediaItems(raw []any) []MediaItem {
	out := make([]MediaItem, 0, len(raw))
	for _, item := range raw {
		switch typed := item.(type) {
		case string:
			out = append(out, MediaItem{URL: typed})
		default:
			rec := record.AsRecord(typed)
			if rec == nil {
				continue
			}
			out = append(out, MediaItem{
				URL:   record.String(rec, record.MediaURL),
				Title: record.String(rec, record.MediaTitle),
			})
		}
	}
	return out
}
