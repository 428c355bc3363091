package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tableside/tableside/internal/adapters/outbound/tui"
	"github.com/tableside/tableside/internal/domain"
)

var burger = domain.MenuItem{
	ID:          "burger-01",
	Name:        "Classic Cheeseburger",
	Description: "Beef patty, cheddar, house sauce",
	Category:    "mains",
	Price:       8.50,
	Allergens:   []string{"gluten", "dairy"},
}

var sorbet = domain.MenuItem{
	ID:           "dessert-02",
	Name:         "Coconut Sorbet",
	Category:     "desserts",
	Price:        4.25,
	IsVegetarian: true,
	IsVegan:      true,
	IsGlutenFree: true,
}

func TestRenderMenu(t *testing.T) {
	out := tui.RenderMenu(
		[]string{"desserts", "mains"},
		map[string][]domain.MenuItem{
			"mains":    {burger},
			"desserts": {sorbet},
		},
	)

	assert.Contains(t, out, "Classic Cheeseburger")
	assert.Contains(t, out, "burger-01")
	assert.Contains(t, out, "Coconut Sorbet")
	assert.Contains(t, out, "8.50")
	assert.Contains(t, out, "[vegan gf]")
}

func TestRenderMenu_SkipsEmptyCategories(t *testing.T) {
	out := tui.RenderMenu(
		[]string{"desserts", "mains"},
		map[string][]domain.MenuItem{"mains": {burger}},
	)

	assert.Contains(t, out, "MAINS")
	assert.NotContains(t, out, "DESSERTS")
}

func TestRenderItem(t *testing.T) {
	out := tui.RenderItem(burger)

	assert.Contains(t, out, "Classic Cheeseburger")
	assert.Contains(t, out, "Beef patty")
	assert.Contains(t, out, "category: mains")
	assert.Contains(t, out, "allergens: gluten, dairy")
}

func TestRenderItem_DietMarks(t *testing.T) {
	out := tui.RenderItem(sorbet)
	assert.Contains(t, out, "[vegan gf]")
}
