package player

import (
	"regexp"
	"strings"
)

// DefaultFallbackImage is a transparent 1x1 GIF.
const DefaultFallbackImage = "data:image/gif;base64,R0lGODlhAQABAIAAAAAAAP///ywAAAAAAQABAAACAUwAOw=="

var (
	absoluteImageURL = regexp.MustCompile(`(?i)^https?://`)
	imagesDirPrefix  = regexp.MustCompile(`(?i)^(?:\./)?images/`)
)

// ImageResolver turns the image references found on player records into
// URLs a client can load.
type ImageResolver struct {
	// BaseURL prefixes site-relative references; empty keeps them relative.
	BaseURL string
	// Fallback is returned when a record carries no image.
	Fallback string
}

// Resolve keeps data URIs and absolute URLs, upgrades protocol-relative ones
// to https and places bare file names under /images/.
func (r ImageResolver) Resolve(raw string) string {
	ref := strings.TrimSpace(raw)
	switch {
	case ref == "":
		return r.Fallback
	case strings.HasPrefix(ref, "data:"), absoluteImageURL.MatchString(ref):
		return ref
	case strings.HasPrefix(ref, "//"):
		return "https:" + ref
	case strings.HasPrefix(ref, "/"):
		return r.base() + ref
	case imagesDirPrefix.MatchString(ref):
		return r.base() + "/" + strings.TrimPrefix(ref, "./")
	default:
		return r.base() + "/images/" + ref
	}
}

func (r ImageResolver) base() string {
	return strings.TrimRight(strings.TrimSpace(r.BaseURL), "/")
}
