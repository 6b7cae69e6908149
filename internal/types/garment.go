// Package types provides type definitions for structured data used throughout the outfit-stylist system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// ColorRef is either a hex color code ("#FF5733") or a canonical color name ("Navy Blue").
// The styling engine normalizes both forms to a canonical name via a fixed lookup table.
type ColorRef string

// IsHex reports whether the reference is a hex code rather than a color name.
func (c ColorRef) IsHex() bool {
	return strings.HasPrefix(string(c), "#")
}

// String returns the raw color reference.
func (c ColorRef) String() string {
	return string(c)
}

// Fit describes how a garment fits the body.
type Fit string

// Fit values recognized by the vision classifier and the styling engine.
const (
	FitFitted    Fit = "fitted"
	FitOversized Fit = "oversized"
	FitRelaxed   Fit = "relaxed"
	FitBodycon   Fit = "bodycon"
	FitLoose     Fit = "loose"
)

// GarmentAttributes represents the structured analysis of one clothing image.
// Produced by the vision classifier; immutable once created.
type GarmentAttributes struct {
	GarmentType      string     `json:"garment_type"`
	Material         string     `json:"material"`
	PrimaryColor     ColorRef   `json:"primary_color"`
	SecondaryColors  []ColorRef `json:"secondary_colors,omitempty"`
	AestheticStyle   string     `json:"aesthetic_style"`
	Fit              Fit        `json:"fit"`
	Occasions        []string   `json:"occasion"`
	Details          string     `json:"details,omitempty"`
	Condition        string     `json:"condition,omitempty"`
	SizeApparent     string     `json:"size_apparent,omitempty"`
	VersatilityScore int        `json:"versatility_score"`
}

// PrimaryOccasion returns the first listed occasion, or fallback when none is set.
func (g *GarmentAttributes) PrimaryOccasion(fallback string) string {
	if len(g.Occasions) > 0 && g.Occasions[0] != "" {
		return g.Occasions[0]
	}
	return fallback
}

// WardrobeProfile aggregates a batch of garment analyses into a wardrobe summary.
type WardrobeProfile struct {
	TotalItems         int                 `json:"total_items"`
	AnalyzedItems      int                 `json:"analyzed_items"`
	Items              []GarmentAttributes `json:"items"`
	DominantColors     []string            `json:"dominant_colors"`
	StylePreferences   []string            `json:"style_preferences"`
	AverageVersatility float64             `json:"average_versatility"`
	Failures           []string            `json:"failures,omitempty"`
}
