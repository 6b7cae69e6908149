package styling

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixie/outfit-stylist/internal/types"
)

func testEngine(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

func TestRecommend_EmptyGarments(t *testing.T) {
	engine := testEngine(1)

	result, err := engine.Recommend(nil, Context{})
	require.Error(t, err)
	assert.Nil(t, result)

	var invalidErr *InvalidInputError
	assert.True(t, errors.As(err, &invalidErr))
	assert.Contains(t, err.Error(), "no garments")
}

func TestRecommend_OversizedBlazer(t *testing.T) {
	engine := testEngine(7)
	garment := types.GarmentAttributes{
		GarmentType:    "blazer",
		Material:       "wool",
		PrimaryColor:   "#000000",
		AestheticStyle: "Business Casual",
		Fit:            types.FitOversized,
		Occasions:      []string{"business"},
	}

	result, err := engine.Recommend([]types.GarmentAttributes{garment}, Context{})
	require.NoError(t, err)

	assert.Equal(t, "Black", result.ColorAnalysis.Primary)
	assert.Equal(t, []string{"White", "Red", "Pink", "Gold", "any color"}, result.ColorAnalysis.Complementary)
	assert.Equal(t, types.HarmonyVibrantModern, result.ColorAnalysis.HarmonyType)

	// A blazer counts as a top, so the oversized-top rationale applies.
	assert.Contains(t, result.StylingLogic, "Oversized tops create a relaxed, modern aesthetic.")
	assert.Contains(t, result.StylingLogic,
		"Professional styling emphasizes clean lines, neutral tones, and structured silhouettes.")

	// Complete metadata maxes out the score.
	assert.Equal(t, 100, result.ConfidenceScore)

	joined := strings.Join(result.Recommendations, " ")
	assert.Contains(t, joined, "fitted bottoms like skinny jeans or tailored pants")
}

func TestRecommend_RecommendationCount(t *testing.T) {
	engine := testEngine(3)
	garment := types.GarmentAttributes{
		GarmentType:  "t-shirt",
		PrimaryColor: "red",
	}

	result, err := engine.Recommend([]types.GarmentAttributes{garment}, Context{})
	require.NoError(t, err)

	// color, fit, occasion, material, layering, shoes, bag, jewelry
	assert.Len(t, result.Recommendations, 8)
	assert.Equal(t, "Shoes: ", result.Recommendations[5][:7])
	assert.Equal(t, "Bag: ", result.Recommendations[6][:5])
	assert.Equal(t, "Jewelry: ", result.Recommendations[7][:9])
}

func TestRecommend_ColorAnalysisDeterministic(t *testing.T) {
	garment := types.GarmentAttributes{
		GarmentType:  "skirt",
		PrimaryColor: "#6C5CE7",
	}

	first, err := testEngine(1).Recommend([]types.GarmentAttributes{garment}, Context{})
	require.NoError(t, err)
	second, err := testEngine(99).Recommend([]types.GarmentAttributes{garment}, Context{})
	require.NoError(t, err)

	// Phrasing varies with the seed; the color analysis never does.
	assert.Equal(t, first.ColorAnalysis, second.ColorAnalysis)
	assert.Equal(t, types.HarmonyCoolMinimal, first.ColorAnalysis.HarmonyType)
}

func TestRecommend_NoColorSkipsColorStep(t *testing.T) {
	engine := testEngine(5)
	garment := types.GarmentAttributes{GarmentType: "scarf"}

	result, err := engine.Recommend([]types.GarmentAttributes{garment}, Context{})
	require.NoError(t, err)

	// Without a primary color the score is base 70 plus the capped count bonus.
	assert.Equal(t, 80, result.ConfidenceScore)
	assert.Len(t, result.Recommendations, 7)
	assert.Empty(t, result.ColorAnalysis.Primary)
}

func TestRecommend_MaterialAdviceFromPool(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		engine := testEngine(seed)
		garment := types.GarmentAttributes{
			GarmentType:  "jeans",
			Material:     "Denim",
			PrimaryColor: "blue",
		}

		result, err := engine.Recommend([]types.GarmentAttributes{garment}, Context{})
		require.NoError(t, err)

		// The material phrase is always the fourth recommendation.
		assert.Contains(t, materialPools["denim"], result.Recommendations[3],
			"seed %d drew outside the denim pool", seed)
	}
}

func TestOccasionAdvice_ContextOverridesGarment(t *testing.T) {
	engine := testEngine(2)
	garment := &types.GarmentAttributes{Occasions: []string{"casual"}}

	advice := engine.occasionAdvice(garment, Context{Occasion: "Party"})
	assert.Equal(t, occasionLogic["party"], advice.Logic)
	assert.Contains(t, occasionVariations["party"], advice.Recommendation)
}

func TestOccasionAdvice_UnknownFallsBackToCasual(t *testing.T) {
	engine := testEngine(2)
	garment := &types.GarmentAttributes{Occasions: []string{"gala dinner"}}

	advice := engine.occasionAdvice(garment, Context{})
	assert.Equal(t, occasionLogic["casual"], advice.Logic)
	assert.Contains(t, occasionVariations["casual"], advice.Recommendation)
}

func TestAnalyzeFitAndProportion_Table(t *testing.T) {
	engine := testEngine(11)

	tests := []struct {
		name        string
		garmentType string
		fit         types.Fit
		wantLogic   string
	}{
		{"oversized top", "sweater", types.FitOversized, "Oversized tops create a relaxed, modern aesthetic."},
		{"loose bottoms", "pants", types.FitLoose, "Relaxed bottoms create a comfortable, effortless silhouette."},
		{"oversized other", "dress", types.FitOversized, "Balance oversized pieces with fitted counterparts for visual proportion."},
		{"fitted top", "blouse", types.FitFitted, "Fitted tops work beautifully with relaxed or wide-leg bottoms."},
		{"bodycon other", "dress", types.FitBodycon, "Fitted pieces create streamlined silhouettes."},
		{"relaxed top", "jacket", types.FitRelaxed, "Relaxed pieces create an effortless, casual aesthetic."},
		{"empty fit defaults to fitted", "shirt", "", "Fitted tops work beautifully with relaxed or wide-leg bottoms."},
		{"unknown fit", "dress", "tailored", "This piece offers flexible styling across different fits and silhouettes."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &types.GarmentAttributes{GarmentType: tt.garmentType, Fit: tt.fit}
			assert.Equal(t, tt.wantLogic, engine.analyzeFitAndProportion(g).Logic)
		})
	}
}

func TestAnalyzeFitAndProportion_FittedBottomsDrawFromPool(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		engine := testEngine(seed)
		g := &types.GarmentAttributes{GarmentType: "skinny jeans", Fit: types.FitFitted}

		pair := engine.analyzeFitAndProportion(g)
		assert.Contains(t, fittedBottomAdvice, pair, "seed %d", seed)
	}
}

func TestShoeRecommendation_GarmentTypeWins(t *testing.T) {
	engine := testEngine(4)

	shoes := engine.shoeRecommendation(&types.GarmentAttributes{
		GarmentType: "dress",
		Occasions:   []string{"formal"},
	})
	// Dress pool takes precedence over the formal occasion pool.
	assert.Contains(t, dressShoes, shoes)

	shoes = engine.shoeRecommendation(&types.GarmentAttributes{
		GarmentType: "blouse",
		Occasions:   []string{"formal"},
	})
	assert.Contains(t, formalShoes, shoes)

	shoes = engine.shoeRecommendation(&types.GarmentAttributes{
		GarmentType:    "hoodie",
		AestheticStyle: "Streetwear",
	})
	assert.Contains(t, streetShoes, shoes)

	shoes = engine.shoeRecommendation(&types.GarmentAttributes{GarmentType: "cardigan"})
	assert.Contains(t, casualShoes, shoes)
}

func TestBagRecommendation_StyleLookup(t *testing.T) {
	engine := testEngine(6)

	bag := engine.bagRecommendation(&types.GarmentAttributes{AestheticStyle: "Y2K"})
	assert.Contains(t, bagsByStyle["y2k"], bag)

	bag = engine.bagRecommendation(&types.GarmentAttributes{AestheticStyle: "gorpcore"})
	assert.Contains(t, genericBags, bag)
}

func TestJewelryRecommendation_DetailRichnessFirst(t *testing.T) {
	engine := testEngine(8)

	// Embroidery details call for minimal jewelry even at a party.
	jewelry := engine.jewelryRecommendation(&types.GarmentAttributes{
		GarmentType: "dress",
		Details:     "floral embroidery on sleeves",
		Occasions:   []string{"party"},
	})
	assert.Contains(t, minimalJewelry, jewelry)

	jewelry = engine.jewelryRecommendation(&types.GarmentAttributes{
		GarmentType: "plain tee",
	})
	assert.Contains(t, layeredJewelry, jewelry)

	jewelry = engine.jewelryRecommendation(&types.GarmentAttributes{
		GarmentType: "dress",
		Occasions:   []string{"formal"},
	})
	assert.Contains(t, formalJewelry, jewelry)
}

func TestSuggestOutfitComponents(t *testing.T) {
	top := suggestOutfitComponents(&types.GarmentAttributes{GarmentType: "silk blouse"})
	assert.Equal(t, "silk blouse", top.Top)
	assert.Equal(t, "Matching bottom (jeans, skirt, or trousers)", top.Bottom)

	bottom := suggestOutfitComponents(&types.GarmentAttributes{GarmentType: "pleated skirt"})
	assert.Equal(t, "pleated skirt", bottom.Bottom)
	assert.Equal(t, "Coordinating top or shirt", bottom.Top)

	other := suggestOutfitComponents(&types.GarmentAttributes{GarmentType: "scarf"})
	assert.Empty(t, other.Top)
	assert.Empty(t, other.Bottom)
	assert.NotEmpty(t, other.Shoes)
	assert.NotEmpty(t, other.Bag)
	assert.Len(t, other.Accessories, 3)
}

func TestConfidenceScore(t *testing.T) {
	full := &types.GarmentAttributes{
		PrimaryColor:   "red",
		Material:       "cotton",
		AestheticStyle: "Minimalist",
		Fit:            types.FitFitted,
	}
	assert.Equal(t, 100, confidenceScore(full, make([]string, 8)))
	assert.Equal(t, 100, confidenceScore(full, make([]string, 5)))

	bare := &types.GarmentAttributes{}
	assert.Equal(t, 70, confidenceScore(bare, nil))
	assert.Equal(t, 74, confidenceScore(bare, make([]string, 2)))
	assert.Equal(t, 80, confidenceScore(bare, make([]string, 20)))
}
