package domain

import "strings"

// MenuItem is one purchasable entry in the restaurant's menu. The menu is
// loaded once at startup and never mutated afterwards.
type MenuItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category"`
	Price        float64  `json:"price"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
	Allergens    []string `json:"allergens"`
}

// Dietary preference values recognized by FilterCriteria. Unrecognized
// values impose no constraint rather than producing an error.
const (
	PrefVegetarian = "vegetarian"
	PrefVegan      = "vegan"
	PrefGlutenFree = "gluten_free"
)

// FilterCriteria selects menu items. Zero-value fields impose no
// constraint, so the zero FilterCriteria matches everything.
type FilterCriteria struct {
	DietaryPreference string
	MaxPrice          *float64
	ExcludeAllergens  []string
	Category          string
}

// Matches reports whether the item satisfies every set constraint.
// Category and allergen comparisons are case-insensitive.
func (f FilterCriteria) Matches(item MenuItem) bool {
	switch strings.ToLower(f.DietaryPreference) {
	case PrefVegetarian:
		if !item.IsVegetarian {
			return false
		}
	case PrefVegan:
		if !item.IsVegan {
			return false
		}
	case PrefGlutenFree:
		if !item.IsGlutenFree {
			return false
		}
	}
	if f.MaxPrice != nil && item.Price > *f.MaxPrice {
		return false
	}
	if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
		return false
	}
	for _, excluded := range f.ExcludeAllergens {
		for _, allergen := range item.Allergens {
			if strings.EqualFold(allergen, excluded) {
				return false
			}
		}
	}
	return true
}
