package usecase

// furnitureStyles is the canonical style vocabulary, lowercase. Shared by
// the style classification summary and the suggestion prefix lookup.
var furnitureStyles = []string{
	"modern",
	"contemporary",
	"minimalist",
	"scandinavian",
	"industrial",
	"rustic",
	"bohemian",
	"mid century modern",
	"art deco",
	"traditional",
	"farmhouse",
	"japandi",
	"coastal",
	"vintage",
	"shabby chic",
	"transitional",
}
