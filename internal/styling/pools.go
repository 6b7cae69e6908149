package styling

// Phrasing pools. The pool contents are the contract; which entry gets drawn
// for a given request is cosmetic variety driven by the engine's random source.

var colorPhrases = []string{
	"pairs beautifully with",
	"works well with",
	"looks stunning with",
	"complements",
	"goes great with",
	"harmonizes with",
	"creates a perfect match with",
	"shines alongside",
}

var pairingPhrases = []string{
	"Try pairing",
	"Consider styling",
	"Combine",
	"Match",
	"Wear",
	"Layer this with",
	"Style",
	"Complement this with",
}

// advicePair couples a rationale sentence with an actionable recommendation.
type advicePair struct {
	Logic          string
	Recommendation string
}

var fittedBottomAdvice = []advicePair{
	{
		Logic:          "Fitted bottoms elongate the silhouette and create clean lines.",
		Recommendation: "Pair these fitted bottoms with a relaxed top or structured blazer for balance.",
	},
	{
		Logic:          "Sleek, fitted bottoms are incredibly versatile and flattering.",
		Recommendation: "Style with an oversized sweater or flowy blouse for that perfect high-low contrast.",
	},
	{
		Logic:          "These form-fitting bottoms create a streamlined base for any outfit.",
		Recommendation: "Add volume on top with a peplum top, ruffled blouse, or chunky knit.",
	},
	{
		Logic:          "Fitted pants are a wardrobe essential that work season after season.",
		Recommendation: "Tuck in a crisp button-down or add a longline cardigan for effortless chic.",
	},
}

var relaxedBottomAdvice = []advicePair{
	{
		Logic:          "Relaxed-fit bottoms offer comfort without sacrificing style.",
		Recommendation: "Pair with a tucked-in tee or fitted top to define your waist.",
	},
	{
		Logic:          "These easy-wearing bottoms are perfect for laid-back sophistication.",
		Recommendation: "Try a half-tuck with a casual tee or go full glam with a bodysuit and heels.",
	},
	{
		Logic:          "Comfortable yet stylish - the best of both worlds.",
		Recommendation: "Cinch with a statement belt or keep it relaxed with a cropped tank.",
	},
	{
		Logic:          "Effortless style starts with comfortable, well-cut bottoms.",
		Recommendation: "Balance the silhouette with a fitted knit or structured jacket.",
	},
}

// occasionLogic maps an occasion to its rationale sentence.
var occasionLogic = map[string]string{
	"formal":   "Formal occasions require polished pieces without excessive patterns or casual elements.",
	"business": "Professional styling emphasizes clean lines, neutral tones, and structured silhouettes.",
	"casual":   "Casual wear allows for relaxed fits, patterns, and personal expression.",
	"party":    "Event styling can feature bolder colors, textures, and statement pieces.",
}

// occasionVariations maps an occasion to its recommendation phrasing pool.
var occasionVariations = map[string][]string{
	"formal": {
		"Pair with tailored bottoms and structured accessories for maximum elegance.",
		"Layer with a sophisticated blazer and minimal jewelry for a refined look.",
		"Combine with polished heels and a structured bag for a formal event.",
		"Accessorize with classic pieces - think pearls, leather belts, and understated bags.",
	},
	"business": {
		"Match with neutral-toned trousers or a pencil skirt for professional polish.",
		"Layer with a blazer and keep accessories minimal and corporate-friendly.",
		"Pair with smart footwear and a professional bag to complete the look.",
		"Add a structured cardigan and invest-worthy accessories for power dressing.",
	},
	"casual": {
		"Style with comfortable jeans or casual bottoms for an effortless vibe.",
		"Mix with your favorite sneakers and a relaxed bag for everyday comfort.",
		"Combine with soft fabrics and laid-back accessories for a chill aesthetic.",
		"Pair with joggers, shorts, or casual bottoms depending on the season.",
	},
	"party": {
		"Elevate with bold jewelry and statement accessories for impact.",
		"Layer with metallic accents and eye-catching bags to stand out.",
		"Pair with heels and glamorous jewelry to make a memorable impression.",
		"Accessorize with confidence - bold colors, statement pieces, and standout shoes.",
	},
}

// materialPools maps a lowercase material to its phrasing pool.
var materialPools = map[string][]string{
	"silk": {
		"This silk piece has a luxe feel - pair with delicate accessories and lighter fabrics.",
		"Silk shines with understated styling - avoid heavy pairings that compete with its elegance.",
		"Layer gently with silk-compatible materials like cotton or linen for sophistication.",
	},
	"denim": {
		"Denim is incredibly versatile - dress it up with heels or keep it casual with sneakers.",
		"This denim piece works from day to night - just change your accessories.",
		"Denim is timeless - style it with anything from blazers to tees depending on your mood.",
	},
	"cotton": {
		"Cotton is your everyday essential - breathable and endlessly mixable.",
		"This cotton piece is perfect for layering and mixing with other textures.",
		"Cotton basics are foundation pieces - build around them with bolder pieces.",
	},
	"wool": {
		"Wool provides warmth and structure - pair with lighter pieces in warmer seasons.",
		"This wool piece works beautifully with complementary textures like cotton or linen.",
		"Wool is timeless - style it across multiple seasons with smart layering.",
	},
	"polyester": {
		"Polyester is durable and travel-friendly - easy to mix with most pieces.",
		"This synthetic blend is versatile and low-maintenance for everyday styling.",
		"Polyester takes color well - make it the focal point of your outfit.",
	},
	"linen": {
		"Linen has natural texture and movement - embrace its relaxed aesthetic.",
		"This linen piece is perfect for warm weather - keep styling light and airy.",
		"Linen pairs beautifully with natural fibers for an effortless summer look.",
	},
}

// genericMaterialAdvice is the fallback pool for unknown materials.
var genericMaterialAdvice = []string{
	"This fabric pairs well with most materials - mix freely with other pieces.",
	"Experiment with layering to see how this fabric works with different textures.",
	"This fabric is versatile - style it confidently with pieces from your wardrobe.",
}

var dressShoes = []string{
	"strappy heels or elegant ballet flats",
	"classic pumps or sophisticated mules",
	"block heels for comfort or sleek stilettos",
	"ankle strap heels or pointed-toe flats",
	"kitten heels or trendy slingbacks",
}

var skirtShoes = []string{
	"ankle boots or classic loafers",
	"knee-high boots or mary jane heels",
	"sneakers for casual or heels for dressy",
	"ballet flats or strappy sandals",
	"platform boots or elegant flats",
}

var pantsShoes = []string{
	"white sneakers or leather loafers",
	"ankle boots or classic oxfords",
	"chunky sneakers or sleek flats",
	"pointed-toe heels or casual slip-ons",
	"minimalist trainers or heeled mules",
	"Chelsea boots or trendy platforms",
}

var formalShoes = []string{
	"polished heels or dress shoes",
	"elegant pumps or oxford shoes",
	"sophisticated heels or loafers",
}

var streetShoes = []string{
	"chunky sneakers or high-tops",
	"retro trainers or combat boots",
	"bold sneakers or platform shoes",
}

var casualShoes = []string{
	"versatile white sneakers",
	"casual loafers or slip-ons",
	"comfortable flats or sandals",
	"trendy mules or espadrilles",
	"classic canvas shoes",
}

// bagsByStyle maps a lowercase aesthetic style to its bag pool.
var bagsByStyle = map[string][]string{
	"minimalist": {
		"sleek leather tote in black or beige",
		"simple crossbody with clean lines",
		"structured handbag in neutral tone",
		"minimalist bucket bag or slim shoulder bag",
	},
	"streetwear": {
		"bold crossbody or utility backpack",
		"logo belt bag or oversized tote",
		"sporty sling bag or canvas messenger",
		"trendy bucket bag with street edge",
	},
	"business casual": {
		"professional tote or structured satchel",
		"leather briefcase or elegant handbag",
		"polished work bag or classic tote",
		"sophisticated shoulder bag in neutral",
	},
	"y2k": {
		"mini shoulder bag or colorful baguette",
		"fun hobo bag or trendy clutch",
		"retro shoulder bag with personality",
		"bold colored bag or statement mini",
	},
	"bohemian": {
		"woven straw bag or fringe crossbody",
		"slouchy hobo bag or embroidered tote",
		"natural fiber bag or relaxed bucket bag",
		"vintage-inspired bag with boho flair",
	},
	"preppy": {
		"classic tote or saddle bag",
		"structured handbag or satchel",
		"timeless shoulder bag in navy or tan",
		"traditional tote with clean design",
	},
}

var genericBags = []string{
	"versatile crossbody or tote bag",
	"structured shoulder bag",
	"everyday handbag or backpack",
	"practical tote or messenger bag",
	"casual bucket bag or satchel",
}

var minimalJewelry = []string{
	"keep it simple - delicate studs or a thin chain",
	"minimal jewelry lets the garment be the star",
	"subtle pieces only - small hoops or dainty bracelet",
	"understated accessories work best here",
	"let the piece shine with barely-there jewelry",
}

var layeredJewelry = []string{
	"layer delicate necklaces for visual interest",
	"stack rings and bracelets to add dimension",
	"mix metals with layered chains and hoops",
	"create depth with multiple delicate pieces",
	"add personality with stacked jewelry",
	"embrace the layered look with mixed pieces",
}

var formalJewelry = []string{
	"classic pearls or diamond studs",
	"elegant drop earrings or tennis bracelet",
	"timeless pieces in gold or silver",
	"sophisticated studs with delicate necklace",
}

var partyJewelry = []string{
	"bold statement earrings or cocktail rings",
	"dramatic pieces that catch the light",
	"chunky bracelets or eye-catching necklace",
	"sparkle with oversized hoops or gemstones",
	"go big with shoulder-dusting earrings",
}

var casualJewelry = []string{
	"everyday hoops and layered necklaces",
	"mixed metals for effortless cool",
	"stackable rings and simple chains",
	"comfortable pieces you can wear daily",
	"trendy ear cuffs or classic studs",
	"personalized pieces that tell your story",
	"fun, playful jewelry that matches your vibe",
}
