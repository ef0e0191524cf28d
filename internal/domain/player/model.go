package player

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/riskibarqy/boxscore/internal/domain/record"
)

var keySeparators = regexp.MustCompile(`[-_+\s]+`)

// Player is a roster record as sent by the upstream source.
type Player struct {
	Raw record.Record
}

// ListFromAny keeps the object entries of a decoded JSON array.
func ListFromAny(items []any) []Player {
	out := make([]Player, 0, len(items))
	for _, item := range items {
		rec := record.AsRecord(item)
		if rec == nil {
			continue
		}
		out = append(out, Player{Raw: rec})
	}
	return out
}

// ID returns the resolved identifier as an opaque string key, "" when absent.
func (p Player) ID() string {
	return record.String(p.Raw, record.PlayerID)
}

// IDOrFallback returns the identifier, or unknown-<index> when absent.
func (p Player) IDOrFallback(index int) string {
	if id := p.ID(); id != "" {
		return id
	}
	return "unknown-" + strconv.Itoa(index)
}

// BaseName is "First Last", falling back to the id and then "Unknown".
func (p Player) BaseName() string {
	first := record.String(p.Raw, record.FirstName)
	last := record.String(p.Raw, record.LastName)
	if name := strings.TrimSpace(first + " " + last); name != "" {
		return name
	}
	if id := p.ID(); id != "" {
		return id
	}
	return "Unknown"
}

// DisplayName appends the jersey number when known.
func (p Player) DisplayName() string {
	base := p.BaseName()
	if jersey := record.String(p.Raw, record.Jersey); jersey != "" && jersey != "0" {
		return base + " - " + jersey
	}
	return base
}

// Affiliation lists the pro teams joined by " • ", or the college when none.
func (p Player) Affiliation() string {
	teams := make([]string, 0, 2)
	if wnba := record.String(p.Raw, record.WNBATeam); wnba != "" {
		teams = append(teams, wnba)
	}
	if unrivaled := record.String(p.Raw, record.Unrivaled); unrivaled != "" {
		teams = append(teams, unrivaled)
	}
	if len(teams) > 0 {
		return strings.Join(teams, " • ")
	}
	return record.String(p.Raw, record.College)
}

// CombinedKey is the URL-friendly lookup key derived from the name.
func (p Player) CombinedKey() string {
	return NormalizeKey(p.BaseName())
}

// NormalizeKey strips separators and lower-cases a name key.
func NormalizeKey(raw string) string {
	return strings.ToLower(keySeparators.ReplaceAllString(raw, ""))
}

// Profile holds the detail fields shown on a player card.
type Profile struct {
	WNBATeamName      string `json:"wnbaTeamName,omitempty"`
	UnrivaledTeamName string `json:"unrivaledTeamName,omitempty"`
	Position          string `json:"position,omitempty"`
	Height            string `json:"height,omitempty"`
	Age               string `json:"age,omitempty"`
	BirthDate         string `json:"birthDate,omitempty"`
	College           string `json:"college,omitempty"`
	Image             string `json:"image,omitempty"`
	Social            Social `json:"social"`
}

// Social carries the raw handles; turning them into links is left to the UI.
type Social struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Website   string `json:"website,omitempty"`
}

// ImageRef is the image reference as sent, "" when absent.
func (p Player) ImageRef() string {
	return trimmed(p.Raw, record.Image)
}

func (p Player) Profile() Profile {
	social := record.Map(p.Raw, record.SocialLinks)
	return Profile{
		WNBATeamName:      trimmed(p.Raw, record.WNBATeam),
		UnrivaledTeamName: trimmed(p.Raw, record.Unrivaled),
		Position:          trimmed(p.Raw, record.Position),
		Height:            trimmed(p.Raw, record.Height),
		Age:               trimmed(p.Raw, record.Age),
		BirthDate:         trimmed(p.Raw, record.BirthDate),
		College:           trimmed(p.Raw, record.College),
		Image:             trimmed(p.Raw, record.Image),
		Social: Social{
			Twitter:   trimmed(social, record.Twitter),
			Instagram: trimmed(social, record.Instagram),
			TikTok:    trimmed(social, record.TikTok),
			Facebook:  trimmed(social, record.Facebook),
			YouTube:   trimmed(social, record.YouTube),
			Website:   trimmed(social, record.Website),
		},
	}
}

func trimmed(rec record.Record, aliases record.Aliases) string {
	return strings.TrimSpace(record.String(rec, aliases))
}
