package domain

import (
	"slices"
	"strings"
)

// Platform identifies a repurposing target (e.g. "linkedin")
type Platform string

const (
	PlatformLinkedIn  Platform = "linkedin"
	PlatformTwitter   Platform = "twitter"
	PlatformInstagram Platform = "instagram"
	PlatformEmail     Platform = "email"
	PlatformSummary   Platform = "summary"
)

// KnownPlatforms lists the platforms in display order
var KnownPlatforms = []Platform{
	PlatformLinkedIn,
	PlatformTwitter,
	PlatformInstagram,
	PlatformEmail,
	PlatformSummary,
}

var platformTitles = map[Platform]string{
	PlatformLinkedIn:  "LinkedIn",
	PlatformTwitter:   "Twitter",
	PlatformInstagram: "Instagram",
	PlatformEmail:     "Email",
	PlatformSummary:   "Summary",
}

// Title returns a human-friendly tab name
func (p Platform) Title() string {
	if title, ok := platformTitles[p]; ok {
		return title
	}
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// IsKnown reports whether p is one of the five built-in platforms
func (p Platform) IsKnown() bool {
	return slices.Contains(KnownPlatforms, p)
}

// SortPlatforms orders platforms canonically: known platforms first in display
// order, unknown ones alphabetically after them. The input is not modified.
func SortPlatforms(platforms []Platform) []Platform {
	sorted := slices.Clone(platforms)
	rank := func(p Platform) int {
		if i := slices.Index(KnownPlatforms, p); i >= 0 {
			return i
		}
		return len(KnownPlatforms)
	}
	slices.SortStableFunc(sorted, func(a, b Platform) int {
		ra, rb := rank(a), rank(b)
		if ra != rb {
			return ra - rb
		}
		return strings.Compare(string(a), string(b))
	})
	return sorted
}
