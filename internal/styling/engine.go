package styling

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/pixie/outfit-stylist/internal/types"
)

// Context carries optional request context into the engine.
type Context struct {
	Occasion string
}

// Engine produces styling recommendations from garment attributes.
// All knowledge is static; the only moving part is the random source used to
// pick among equivalent phrasings, injected so tests can pin a seed.
type Engine struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine with the given random source.
// A nil source gets a time-seeded one.
func NewEngine(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

// pick draws one entry from a phrasing pool.
func (e *Engine) pick(options []string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return options[e.rng.Intn(len(options))]
}

// pickPair draws one logic/recommendation pair from an advice pool.
func (e *Engine) pickPair(options []advicePair) advicePair {
	e.mu.Lock()
	defer e.mu.Unlock()
	return options[e.rng.Intn(len(options))]
}

// Recommend generates an outfit recommendation for the given garments, using
// garments[0] as the base garment. It is total over its static tables and
// returns an error only for an empty garment list.
func (e *Engine) Recommend(garments []types.GarmentAttributes, rctx Context) (*types.StylingResult, error) {
	if len(garments) == 0 {
		return nil, &InvalidInputError{Message: "no garments provided for analysis"}
	}

	base := garments[0]
	var logic []string
	var recommendations []string

	// 1. Color harmony
	primaryName := ToColorName(base.PrimaryColor)
	complementary := ComplementaryColors(base.PrimaryColor)
	if primaryName != "" && len(complementary) > 0 {
		phrase := e.pick(colorPhrases)
		pairing := complementary
		if len(pairing) > 2 {
			pairing = pairing[:2]
		}
		logic = append(logic, fmt.Sprintf("%s %s.",
			strings.ToUpper(phrase[:1])+phrase[1:], strings.Join(pairing, ", ")))
		recommendations = append(recommendations, e.colorRecommendation(&base, primaryName, pairing))
	}

	// 2. Fit and proportion
	fitAdvice := e.analyzeFitAndProportion(&base)
	logic = append(logic, fitAdvice.Logic)
	recommendations = append(recommendations, fitAdvice.Recommendation)

	// 3. Occasion-based styling
	occasionAdvice := e.occasionAdvice(&base, rctx)
	logic = append(logic, occasionAdvice.Logic)
	recommendations = append(recommendations, occasionAdvice.Recommendation)

	// 4. Material and care
	recommendations = append(recommendations, e.materialAdvice(&base))

	// 5. Layering
	layerAdvice := e.layeringAdvice(&base)
	logic = append(logic, layerAdvice.Logic)
	recommendations = append(recommendations, layerAdvice.Recommendation)

	// 6. Accessories
	recommendations = append(recommendations, e.accessoryAdvice(&base)...)

	if len(logic) == 0 {
		logic = append(logic, "This piece offers versatile styling options for your wardrobe.")
	}

	return &types.StylingResult{
		BaseGarment:     base,
		StylingLogic:    strings.Join(logic, " "),
		Recommendations: recommendations,
		ColorAnalysis: types.ColorAnalysis{
			Primary:       primaryName,
			Complementary: complementary,
			HarmonyType:   HarmonyFor(&base),
		},
		OutfitComponents: suggestOutfitComponents(&base),
		ConfidenceScore:  confidenceScore(&base, recommendations),
	}, nil
}

// colorRecommendation phrases the pairing suggestion according to whether the
// base garment is a top, a bottom, or something else.
func (e *Engine) colorRecommendation(g *types.GarmentAttributes, primaryName string, pairing []string) string {
	phrase := e.pick(pairingPhrases)
	garmentType := strings.ToLower(g.GarmentType)

	second := pairing[0]
	if len(pairing) > 1 {
		second = pairing[1]
	}

	switch {
	case strings.Contains(garmentType, "shirt") || strings.Contains(garmentType, "top"):
		return fmt.Sprintf("%s this %s top with %s or %s bottoms.", phrase, primaryName, pairing[0], second)
	case strings.Contains(garmentType, "pants") || strings.Contains(garmentType, "skirt"):
		return fmt.Sprintf("%s these %s bottoms with a %s or %s top.", phrase, primaryName, pairing[0], second)
	default:
		return fmt.Sprintf("%s this %s piece with %s for great contrast.", phrase, primaryName, pairing[0])
	}
}

// confidenceScore rates the recommendation: base 70, bonuses for complete
// garment metadata and recommendation count, capped at 100.
func confidenceScore(g *types.GarmentAttributes, recommendations []string) int {
	score := 70

	if g.PrimaryColor != "" {
		score += 10
	}
	if g.Material != "" {
		score += 5
	}
	if g.AestheticStyle != "" {
		score += 10
	}
	if g.Fit != "" {
		score += 5
	}

	bonus := len(recommendations) * 2
	if bonus > 10 {
		bonus = 10
	}
	score += bonus

	if score > 100 {
		score = 100
	}
	return score
}

// suggestOutfitComponents names the pieces that complete the look.
func suggestOutfitComponents(g *types.GarmentAttributes) types.OutfitComponents {
	components := types.OutfitComponents{
		Shoes:       "Shoes in neutral or complementary color",
		Bag:         "Structured or crossbody bag for cohesion",
		Accessories: []string{"Watch or bracelet", "Minimal jewelry", "Scarf if weather permits"},
	}

	garmentType := strings.ToLower(g.GarmentType)
	switch {
	case strings.Contains(garmentType, "top") || strings.Contains(garmentType, "shirt") || strings.Contains(garmentType, "blouse"):
		components.Top = g.GarmentType
		components.Bottom = "Matching bottom (jeans, skirt, or trousers)"
	case strings.Contains(garmentType, "bottom") || strings.Contains(garmentType, "pants") || strings.Contains(garmentType, "skirt"):
		components.Bottom = g.GarmentType
		components.Top = "Coordinating top or shirt"
	}

	return components
}
