package domain

// Category is the closed set of waste categories a report may carry.
// Values are never free text; anything outside the set is rejected or
// coerced to CategoryGarbageCollection.
type Category string

const (
	CategoryDeadAnimals         Category = "Dead Animals"
	CategoryGarbageCollection   Category = "Garbage Collection"
	CategoryCleanPublicSpace    Category = "Clean Public Space"
	CategoryOverflowingDustbins Category = "Overflowing Dustbins"
	CategoryConstructionWaste   Category = "Construction Waste"
	CategoryPlasticWaste        Category = "Plastic Waste"
	CategoryOrganicWaste        Category = "Organic Waste"
	CategoryDrainCleaning       Category = "Drain Cleaning"
)

// DefaultCategory is what an unrecognised classifier category collapses to.
const DefaultCategory = CategoryGarbageCollection

// AllCategories lists the closed set in its declared order. The order is a
// contract: classification uses it as the tie-break when one label text
// matches the keyword sets of several categories.
var AllCategories = []Category{
	CategoryDeadAnimals,
	CategoryGarbageCollection,
	CategoryCleanPublicSpace,
	CategoryOverflowingDustbins,
	CategoryConstructionWaste,
	CategoryPlasticWaste,
	CategoryOrganicWaste,
	CategoryDrainCleaning,
}

func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory validates free text against the closed set.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}
