package enums

import "fmt"

// GoodCategory maps to the good_category enum in Postgres.
type GoodCategory string

const (
	GoodCategorySupplies  GoodCategory = "supplies"
	GoodCategoryFood      GoodCategory = "food"
	GoodCategoryEquipment GoodCategory = "equipment"
	GoodCategoryDrink     GoodCategory = "drink"
)

var validGoodCategories = []GoodCategory{
	GoodCategorySupplies,
	GoodCategoryFood,
	GoodCategoryEquipment,
	GoodCategoryDrink,
}

// IsValid checks whether the given category matches the canonical enum.
func (g GoodCategory) IsValid() bool {
	for _, candidate := range validGoodCategories {
		if candidate == g {
			return true
		}
	}
	return false
}

// Label returns the human-readable category label used in alert messages.
func (g GoodCategory) Label() string {
	switch g {
	case GoodCategorySupplies:
		return "supplies"
	case GoodCategoryFood:
		return "food"
	case GoodCategoryEquipment:
		return "equipment"
	case GoodCategoryDrink:
		return "drinks"
	default:
		return string(g)
	}
}

// ParseGoodCategory converts raw strings into GoodCategory.
func ParseGoodCategory(value string) (GoodCategory, error) {
	for _, candidate := range validGoodCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid good category %q", value)
}
