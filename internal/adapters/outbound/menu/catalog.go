// Package menu implements the read-only menu catalog port backed by a
// JSON item list loaded once at startup.
package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tableside/tableside/internal/domain"
)

// Catalog is an immutable in-memory domain.MenuCatalog. All lookups are
// index hits; no method mutates the catalog, so it is safe for
// concurrent use without locking.
type Catalog struct {
	items      []domain.MenuItem
	byID       map[string]int
	byName     map[string]int // lower-cased item name
	categories []string       // sorted, unique
}

// NewCatalog validates the items and builds lookup indexes. Item ids
// must be unique and non-empty, and prices non-negative.
func NewCatalog(items []domain.MenuItem) (*Catalog, error) {
	c := &Catalog{
		items:  make([]domain.MenuItem, len(items)),
		byID:   make(map[string]int, len(items)),
		byName: make(map[string]int, len(items)),
	}
	copy(c.items, items)

	seen := make(map[string]bool)
	for i, item := range c.items {
		if item.ID == "" {
			return nil, fmt.Errorf("menu item %d: empty id", i)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("menu item %q: duplicate id", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("menu item %q: negative price %.2f", item.ID, item.Price)
		}
		c.byID[item.ID] = i
		c.byName[strings.ToLower(item.Name)] = i
		if !seen[item.Category] {
			seen[item.Category] = true
			c.categories = append(c.categories, item.Category)
		}
	}
	sort.Strings(c.categories)
	return c, nil
}

// ItemByID returns the item with the exact id.
func (c *Catalog) ItemByID(id string) (domain.MenuItem, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrItemNotFound
	}
	return c.items[i], nil
}

// ItemByIdentifier resolves an item by id first, then by
// case-insensitive name.
func (c *Catalog) ItemByIdentifier(identifier string) (domain.MenuItem, error) {
	if item, err := c.ItemByID(identifier); err == nil {
		return item, nil
	}
	i, ok := c.byName[strings.ToLower(identifier)]
	if !ok {
		return domain.MenuItem{}, domain.ErrItemNotFound
	}
	return c.items[i], nil
}

// Categories returns the sorted category names. The caller gets its own
// copy.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// ItemsByCategory returns all items whose category matches exactly, in
// menu order.
func (c *Catalog) ItemsByCategory(category string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Find returns all items matching the criteria, in menu order.
func (c *Catalog) Find(criteria domain.FilterCriteria) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range c.items {
		if criteria.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len reports the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}
