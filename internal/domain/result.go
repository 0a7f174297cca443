package domain

import (
	"strings"
)

// RepurposeResult is the response of a repurpose call, keyed by platform.
// Any subset of platforms may be present.
type RepurposeResult struct {
	Results map[Platform][]Variant `json:"results" yaml:"results"`
	Success bool                   `json:"success" yaml:"success"`
}

// Platforms returns the platforms present in the result in canonical order
func (r *RepurposeResult) Platforms() []Platform {
	if r == nil {
		return nil
	}
	platforms := make([]Platform, 0, len(r.Results))
	for p := range r.Results {
		platforms = append(platforms, p)
	}
	return SortPlatforms(platforms)
}

// Variants returns the variants for a platform (nil when absent)
func (r *RepurposeResult) Variants(p Platform) []Variant {
	if r == nil {
		return nil
	}
	return r.Results[p]
}

// VariantCount returns the number of variants across all platforms
func (r *RepurposeResult) VariantCount() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, variants := range r.Results {
		total += len(variants)
	}
	return total
}

const (
	exportTitle = "CONTENTPLY - REPURPOSED CONTENT"
	ruleWidth   = 50
)

// FormatExport renders every variant as a flat, delimited text document
func FormatExport(r *RepurposeResult) string {
	var b strings.Builder
	dashes := strings.Repeat("-", ruleWidth)

	b.WriteString(exportTitle + "\n\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	for _, platform := range r.Platforms() {
		b.WriteString(strings.ToUpper(string(platform)) + "\n")
		b.WriteString(dashes + "\n\n")

		for i, variant := range r.Results[platform] {
			b.WriteString(variant.DisplayLabel(i) + "\n\n")
			b.WriteString(variant.Text() + "\n\n")
			b.WriteString(dashes + "\n\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}
