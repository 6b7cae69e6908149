// Package styling implements the color and style rule engine: pure functions
// over static knowledge tables mapping colors, materials, fits, and occasions
// to styling advice.
package styling

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pixie/outfit-stylist/internal/types"
)

// hexNames maps common palette hex codes to human-friendly color names.
var hexNames = map[string]string{
	"#000000": "Black",
	"#FFFFFF": "White",
	"#808080": "Gray",
	"#A9A9A9": "Dark Gray",
	"#D3D3D3": "Light Gray",
	"#C0C0C0": "Silver",
	"#FFB6C1": "Light Pink",
	"#FFD700": "Gold",
	"#87CEEB": "Sky Blue",
	"#98FB98": "Pale Green",
	"#DDA0DD": "Plum",
	"#FF0000": "Red",
	"#0000FF": "Blue",
	"#00FF00": "Lime",
	"#FFFF00": "Yellow",
	"#FF8C00": "Dark Orange",
	"#8B4513": "Saddle Brown",
	"#CD853F": "Peru",
	"#DEB887": "Burly Wood",
	"#D2B48C": "Tan",
	"#BC8F8F": "Rosy Brown",
	"#FF4500": "Orange Red",
	"#FF6347": "Tomato",
	"#FFA500": "Orange",
	"#DC143C": "Crimson",
	"#0000CD": "Medium Blue",
	"#00CED1": "Dark Turquoise",
	"#48D1CC": "Medium Turquoise",
	"#20B2AA": "Light Sea Green",
	"#4169E1": "Royal Blue",
	"#6C5CE7": "Indigo",
	"#00CEC9": "Teal",
	"#FAB1A0": "Peach",
	"#2D3436": "Charcoal",
}

// pairingRules maps a lowercase canonical color name to colors that pair well
// with it. Hex references are normalized to names before lookup, so this single
// named-key table covers both forms.
var pairingRules = map[string][]string{
	// Red family
	"red":      {"White", "Black", "Navy Blue", "Beige", "Gray"},
	"crimson":  {"White", "Black", "Cream", "Gold"},
	"burgundy": {"Cream", "Tan", "Black", "Gray"},
	// Blue family
	"blue":      {"White", "Gray", "Beige", "Brown", "Navy Blue"},
	"navy blue": {"White", "Beige", "Gray", "Red", "Gold"},
	"sky blue":  {"White", "Pink", "Gray", "Beige"},
	// Green family
	"green":        {"White", "Brown", "Beige", "Navy Blue", "Black"},
	"olive":        {"Cream", "Brown", "White", "Burgundy"},
	"forest green": {"Tan", "Cream", "Brown", "Gold"},
	// Yellow/Orange
	"yellow":  {"Gray", "Navy Blue", "White", "Purple"},
	"mustard": {"Navy Blue", "Brown", "Cream", "Burgundy"},
	"orange":  {"Navy Blue", "Teal", "Brown", "White"},
	// Pink
	"pink":     {"White", "Gray", "Navy Blue", "Beige"},
	"hot pink": {"Black", "White", "Navy Blue"},
	// Purple
	"purple":   {"White", "Gray", "Yellow", "Green"},
	"lavender": {"White", "Gray", "Navy Blue", "Sage Green"},
	"indigo":   {"Teal", "Peach", "White"},
	// Brown family
	"brown": {"Cream", "Beige", "White", "Olive", "Orange"},
	"tan":   {"White", "Navy Blue", "Brown", "Burgundy"},
	"beige": {"Navy Blue", "Brown", "White", "Black"},
	// Teal/Peach (palette accents)
	"teal":  {"Indigo", "Charcoal", "Gold"},
	"peach": {"Charcoal", "White", "Indigo"},
	// Neutrals
	"black": {"White", "Red", "Pink", "Gold", "any color"},
	"white": {"any color", "Navy Blue", "Red", "Black"},
	"gray":  {"Yellow", "Pink", "Teal", "White", "any color"},
}

// defaultPairing is used when no pairing rule matches the base color.
var defaultPairing = []string{"White", "Black", "Navy Blue", "Beige"}

// harmonyPalettes holds the representative hex palette per harmony type.
var harmonyPalettes = map[types.HarmonyType][]string{
	types.HarmonyWarmEarthy:    {"#8B4513", "#A0522D", "#CD853F", "#DAA520"},
	types.HarmonyCoolMinimal:   {"#2F4F4F", "#708090", "#778899", "#A9A9A9"},
	types.HarmonyVibrantModern: {"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A"},
	types.HarmonySoftRomantic:  {"#FFB6D9", "#DDA0DD", "#D8BFD8", "#F0E68C"},
}

// ToColorName converts a hex color or name reference to a human-friendly color
// name. Names pass through with normalized capitalization; unknown hex codes
// are returned uppercased. Idempotent: applying it twice equals applying once.
func ToColorName(color types.ColorRef) string {
	raw := strings.TrimSpace(color.String())
	if raw == "" {
		return ""
	}
	if !color.IsHex() {
		first, size := utf8.DecodeRuneInString(raw)
		return strings.ToUpper(string(first)) + raw[size:]
	}
	hex := strings.ToUpper(raw)
	if name, ok := hexNames[hex]; ok {
		return name
	}
	return hex
}

// ComplementaryColors looks up the pairing table for the given color reference.
// Resolution order: exact key match, substring containment on keys, then the
// fixed default pairing.
func ComplementaryColors(color types.ColorRef) []string {
	name := ToColorName(color)
	if name == "" {
		return []string{"White", "Black", "Gray"}
	}

	key := strings.ToLower(name)
	if pairs, ok := pairingRules[key]; ok {
		return pairs
	}

	// Partial match: deterministic order over sorted keys.
	keys := make([]string, 0, len(pairingRules))
	for k := range pairingRules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return pairingRules[k]
		}
	}

	return defaultPairing
}

// HarmonyFor classifies the color harmony of a garment's primary color.
// The decision table is keyed on exact hex/name matches and defaults to
// vibrant_modern.
func HarmonyFor(garment *types.GarmentAttributes) types.HarmonyType {
	raw := strings.ToLower(strings.TrimSpace(garment.PrimaryColor.String()))
	name := strings.ToLower(ToColorName(garment.PrimaryColor))

	switch {
	case raw == "#6c5ce7" || raw == "#00cec9" || name == "indigo" || name == "teal":
		return types.HarmonyCoolMinimal
	case raw == "#fab1a0" || name == "peach":
		return types.HarmonyWarmEarthy
	}
	return types.HarmonyVibrantModern
}

// HarmonyPalette returns the representative hex palette for a harmony type.
func HarmonyPalette(h types.HarmonyType) []string {
	return harmonyPalettes[h]
}

// ColorVocabulary returns the canonical color names, sorted, for use in the
// vision classifier's structured-output instruction.
func ColorVocabulary() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range hexNames {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for key := range pairingRules {
		if key == "black" || key == "white" || key == "gray" {
			continue // already present via hexNames
		}
		// Pairing keys are lowercase multi-word names; title-case each word.
		name := titleCase(key)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
