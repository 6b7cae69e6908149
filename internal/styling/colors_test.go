package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pixie/outfit-stylist/internal/types"
)

func TestToColorName_HexLookup(t *testing.T) {
	assert.Equal(t, "Black", ToColorName("#000000"))
	assert.Equal(t, "Indigo", ToColorName("#6C5CE7"))
	assert.Equal(t, "Teal", ToColorName("#00cec9")) // case-insensitive hex
}

func TestToColorName_NamePassthrough(t *testing.T) {
	assert.Equal(t, "Navy blue", ToColorName("navy blue"))
	assert.Equal(t, "Red", ToColorName("red"))
	assert.Equal(t, "Red", ToColorName(" red "))
}

func TestToColorName_MultibyteFirstRune(t *testing.T) {
	assert.Equal(t, "Écru", ToColorName("écru"))
	assert.Equal(t, "Écru", ToColorName("Écru"))
}

func TestToColorName_UnknownHex(t *testing.T) {
	assert.Equal(t, "#123456", ToColorName("#123456"))
}

func TestToColorName_Empty(t *testing.T) {
	assert.Equal(t, "", ToColorName(""))
}

func TestToColorName_Idempotent(t *testing.T) {
	inputs := []types.ColorRef{"#000000", "#6C5CE7", "navy blue", "Red", "#123456", "peach"}
	for _, input := range inputs {
		once := ToColorName(input)
		twice := ToColorName(types.ColorRef(once))
		assert.Equal(t, once, twice, "ToColorName should be idempotent for %q", input)
	}
}

func TestComplementaryColors_ExactMatch(t *testing.T) {
	pairs := ComplementaryColors("red")
	assert.Equal(t, []string{"White", "Black", "Navy Blue", "Beige", "Gray"}, pairs)
}

func TestComplementaryColors_HexResolvesToName(t *testing.T) {
	// #000000 normalizes to Black and hits the black pairing entry.
	pairs := ComplementaryColors("#000000")
	assert.Equal(t, []string{"White", "Red", "Pink", "Gold", "any color"}, pairs)
}

func TestComplementaryColors_SubstringMatch(t *testing.T) {
	// "dark red" contains the key "red".
	pairs := ComplementaryColors("dark red")
	assert.Equal(t, pairingRules["red"], pairs)
}

func TestComplementaryColors_DefaultFallback(t *testing.T) {
	pairs := ComplementaryColors("chartreuse")
	assert.Equal(t, []string{"White", "Black", "Navy Blue", "Beige"}, pairs)
}

func TestComplementaryColors_Empty(t *testing.T) {
	assert.Equal(t, []string{"White", "Black", "Gray"}, ComplementaryColors(""))
}

func TestComplementaryColors_Deterministic(t *testing.T) {
	first := ComplementaryColors("#6C5CE7")
	second := ComplementaryColors("#6C5CE7")
	assert.Equal(t, first, second)
}

func TestHarmonyFor_CoolMinimal(t *testing.T) {
	for _, color := range []types.ColorRef{"#6C5CE7", "#00CEC9", "indigo", "Teal"} {
		g := &types.GarmentAttributes{PrimaryColor: color}
		assert.Equal(t, types.HarmonyCoolMinimal, HarmonyFor(g), "color %q", color)
	}
}

func TestHarmonyFor_WarmEarthy(t *testing.T) {
	for _, color := range []types.ColorRef{"#FAB1A0", "peach"} {
		g := &types.GarmentAttributes{PrimaryColor: color}
		assert.Equal(t, types.HarmonyWarmEarthy, HarmonyFor(g), "color %q", color)
	}
}

func TestHarmonyFor_DefaultVibrantModern(t *testing.T) {
	g := &types.GarmentAttributes{PrimaryColor: "#FF0000"}
	assert.Equal(t, types.HarmonyVibrantModern, HarmonyFor(g))
}

func TestHarmonyPalette_AllTypesPresent(t *testing.T) {
	for _, h := range []types.HarmonyType{
		types.HarmonyCoolMinimal, types.HarmonyWarmEarthy,
		types.HarmonyVibrantModern, types.HarmonySoftRomantic,
	} {
		assert.Len(t, HarmonyPalette(h), 4)
	}
}

func TestColorVocabulary_ContainsCanonicalNames(t *testing.T) {
	vocab := ColorVocabulary()
	assert.Contains(t, vocab, "Black")
	assert.Contains(t, vocab, "Navy Blue")
	assert.Contains(t, vocab, "Sky Blue")
	assert.Contains(t, vocab, "Burgundy")
	assert.NotContains(t, vocab, "any color")

	// Sorted and unique
	for i := 1; i < len(vocab); i++ {
		assert.Less(t, vocab[i-1], vocab[i])
	}
}
