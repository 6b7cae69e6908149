package styling

import (
	"fmt"
	"strings"

	"github.com/pixie/outfit-stylist/internal/types"
)

// isBottom reports whether the garment type string names a bottom piece.
func isBottom(garmentType string) bool {
	for _, kw := range []string{"pants", "skirt", "jeans", "shorts", "trousers", "leggings"} {
		if strings.Contains(garmentType, kw) {
			return true
		}
	}
	return false
}

// isTop reports whether the garment type string names a top piece.
func isTop(garmentType string) bool {
	for _, kw := range []string{"shirt", "top", "blouse", "tee", "sweater", "jacket", "blazer"} {
		if strings.Contains(garmentType, kw) {
			return true
		}
	}
	return false
}

// analyzeFitAndProportion picks a rationale/recommendation pair from the
// fit x garment-type decision table.
func (e *Engine) analyzeFitAndProportion(g *types.GarmentAttributes) advicePair {
	fit := g.Fit
	if fit == "" {
		fit = types.FitFitted
	}
	garmentType := strings.ToLower(g.GarmentType)
	bottom := isBottom(garmentType)
	top := isTop(garmentType)

	switch fit {
	case types.FitOversized, types.FitLoose:
		switch {
		case bottom:
			return advicePair{
				Logic:          "Relaxed bottoms create a comfortable, effortless silhouette.",
				Recommendation: "Balance these relaxed bottoms with a fitted or cropped top for proportion.",
			}
		case top:
			return advicePair{
				Logic:          "Oversized tops create a relaxed, modern aesthetic.",
				Recommendation: "Pair this oversized piece with fitted bottoms like skinny jeans or tailored pants.",
			}
		default:
			return advicePair{
				Logic:          "Balance oversized pieces with fitted counterparts for visual proportion.",
				Recommendation: "Mix fitted and relaxed pieces to create balanced outfits.",
			}
		}
	case types.FitFitted, types.FitBodycon:
		switch {
		case bottom:
			return e.pickPair(fittedBottomAdvice)
		case top:
			return advicePair{
				Logic:          "Fitted tops work beautifully with relaxed or wide-leg bottoms.",
				Recommendation: "Style this fitted top with wide-leg pants or flowing skirts for comfort and elegance.",
			}
		default:
			return advicePair{
				Logic:          "Fitted pieces create streamlined silhouettes.",
				Recommendation: "Balance fitted items with relaxed pieces for versatile styling.",
			}
		}
	case types.FitRelaxed:
		if bottom {
			return e.pickPair(relaxedBottomAdvice)
		}
		return advicePair{
			Logic:          "Relaxed pieces create an effortless, casual aesthetic.",
			Recommendation: "Style with fitted bottoms or add a belt to create structure.",
		}
	}

	return advicePair{
		Logic:          "This piece offers flexible styling across different fits and silhouettes.",
		Recommendation: "Mix with contrasting fits to create dynamic, balanced outfits.",
	}
}

// occasionAdvice looks up the fixed occasion table, preferring the request
// context, then the garment's first occasion, then casual.
func (e *Engine) occasionAdvice(g *types.GarmentAttributes, rctx Context) advicePair {
	occasion := rctx.Occasion
	if occasion == "" {
		occasion = g.PrimaryOccasion("casual")
	}
	occasion = strings.ToLower(occasion)

	logicSentence, ok := occasionLogic[occasion]
	if !ok {
		occasion = "casual"
		logicSentence = occasionLogic[occasion]
	}

	return advicePair{
		Logic:          logicSentence,
		Recommendation: e.pick(occasionVariations[occasion]),
	}
}

// materialAdvice picks a care/styling phrase for the garment's material.
func (e *Engine) materialAdvice(g *types.GarmentAttributes) string {
	material := strings.ToLower(g.Material)
	if material == "" {
		material = "cotton"
	}

	pool, ok := materialPools[material]
	if !ok {
		pool = genericMaterialAdvice
	}
	return e.pick(pool)
}

// layeringAdvice picks a style-aware layering suggestion.
func (e *Engine) layeringAdvice(g *types.GarmentAttributes) advicePair {
	style := g.AestheticStyle
	if style == "" {
		style = "Casual"
	}

	options := []advicePair{
		{
			Logic:          fmt.Sprintf("%s pieces benefit from strategic layering to add depth.", style),
			Recommendation: "Try layering with a denim jacket for that perfect casual-cool vibe.",
		},
		{
			Logic:          fmt.Sprintf("Building versatility is key with %s pieces.", style),
			Recommendation: "Layer with a cardigan or sweater to extend this piece across seasons.",
		},
		{
			Logic:          "A well-layered outfit multiplies outfit options.",
			Recommendation: "Throw on a blazer for instant polish or keep it relaxed with an overshirt.",
		},
		{
			Logic:          fmt.Sprintf("%s styling works beautifully with thoughtful layering.", style),
			Recommendation: "Add dimension with a light jacket or structured layer underneath.",
		},
	}
	return e.pickPair(options)
}

// accessoryAdvice produces the three fixed accessory recommendations.
func (e *Engine) accessoryAdvice(g *types.GarmentAttributes) []string {
	return []string{
		"Shoes: " + e.shoeRecommendation(g),
		"Bag: " + e.bagRecommendation(g),
		"Jewelry: " + e.jewelryRecommendation(g),
	}
}

// shoeRecommendation keys on garment type first, then occasion and style.
func (e *Engine) shoeRecommendation(g *types.GarmentAttributes) string {
	garmentType := strings.ToLower(g.GarmentType)
	occasion := g.PrimaryOccasion("casual")
	style := strings.ToLower(g.AestheticStyle)
	if style == "" {
		style = "casual"
	}

	switch {
	case strings.Contains(garmentType, "dress"):
		return e.pick(dressShoes)
	case strings.Contains(garmentType, "skirt"):
		return e.pick(skirtShoes)
	case strings.Contains(garmentType, "pants") || strings.Contains(garmentType, "jeans"):
		return e.pick(pantsShoes)
	}

	switch {
	case occasion == "formal":
		return e.pick(formalShoes)
	case strings.Contains(style, "street"):
		return e.pick(streetShoes)
	}

	return e.pick(casualShoes)
}

// bagRecommendation keys on aesthetic style with a generic fallback pool.
func (e *Engine) bagRecommendation(g *types.GarmentAttributes) string {
	style := strings.ToLower(g.AestheticStyle)
	if style == "" {
		style = "casual"
	}

	pool, ok := bagsByStyle[style]
	if !ok {
		pool = genericBags
	}
	return e.pick(pool)
}

// jewelryRecommendation keys on garment detail richness, then occasion.
func (e *Engine) jewelryRecommendation(g *types.GarmentAttributes) string {
	garmentType := strings.ToLower(g.GarmentType)
	details := strings.ToLower(g.Details)
	occasion := g.PrimaryOccasion("casual")

	switch {
	case strings.Contains(garmentType, "statement") ||
		strings.Contains(details, "embroidery") || strings.Contains(details, "pattern"):
		return e.pick(minimalJewelry)
	case strings.Contains(garmentType, "simple") || strings.Contains(garmentType, "plain"):
		return e.pick(layeredJewelry)
	}

	switch occasion {
	case "formal":
		return e.pick(formalJewelry)
	case "party":
		return e.pick(partyJewelry)
	}

	return e.pick(casualJewelry)
}
