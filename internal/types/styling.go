package types

// HarmonyType classifies the color harmony of an outfit base color.
type HarmonyType string

// Harmony classes produced by the styling engine.
const (
	HarmonyCoolMinimal   HarmonyType = "cool_minimal"
	HarmonyWarmEarthy    HarmonyType = "warm_earthy"
	HarmonyVibrantModern HarmonyType = "vibrant_modern"
	HarmonySoftRomantic  HarmonyType = "soft_romantic"
)

// ColorAnalysis holds the color-pairing conclusion for a base garment.
type ColorAnalysis struct {
	Primary       string      `json:"primary"`
	Complementary []string    `json:"complementary"`
	HarmonyType   HarmonyType `json:"harmony_type"`
}

// OutfitComponents names the pieces that complete the look around the base garment.
// Top and Bottom are empty when the slot is covered by the base garment itself.
type OutfitComponents struct {
	Top         string   `json:"top,omitempty"`
	Bottom      string   `json:"bottom,omitempty"`
	Outerwear   string   `json:"outerwear,omitempty"`
	Shoes       string   `json:"shoes"`
	Bag         string   `json:"bag"`
	Accessories []string `json:"accessories"`
}

// StylingResult is the rule engine's output for one request.
// Read-only downstream of the engine.
type StylingResult struct {
	BaseGarment      GarmentAttributes `json:"base_garment"`
	StylingLogic     string            `json:"styling_logic"`
	Recommendations  []string          `json:"recommendations"`
	ColorAnalysis    ColorAnalysis     `json:"color_analysis"`
	OutfitComponents OutfitComponents  `json:"outfit_components"`
	ConfidenceScore  int               `json:"confidence_score"`
}
