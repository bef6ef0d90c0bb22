package site

import "strings"

var slugReplacer = strings.NewReplacer(
	" ", "-",
	"/", "-per-",
	"(", "",
	")", "",
	"°", "",
	"²", "2",
	"³", "3",
	"·", "-",
	"µ", "u",
)

// Slug turns a unit name into its URL segment: "Square Meter" -> "square-meter",
// "Meter/Second" -> "meter-per-second".
func Slug(name string) string {
	return slugReplacer.Replace(strings.ToLower(name))
}

// PairPath is the site path of the from -> to conversion page.
func PairPath(categoryID, fromName, toName string) string {
	return "/" + categoryID + "/" + Slug(fromName) + "-to-" + Slug(toName) + "/"
}

// CategoryPath is the site path of a category page.
func CategoryPath(categoryID string) string {
	return "/" + categoryID + "/"
}

// RegionPath is the site path of a land region page.
func RegionPath(regionSlug string) string {
	return "/land/" + regionSlug + "-land-conversion/"
}
