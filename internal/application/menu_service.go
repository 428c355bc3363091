// Package application wires the domain ports into the operations exposed
// over MCP and the CLI.
package application

import (
	"fmt"

	"github.com/tableside/tableside/internal/domain"
)

// MenuService answers read-only catalog queries. It holds no state of
// its own; everything delegates to the immutable catalog.
type MenuService struct {
	catalog domain.MenuCatalog
}

func NewMenuService(catalog domain.MenuCatalog) *MenuService {
	return &MenuService{catalog: catalog}
}

// Categories returns the sorted category names.
func (s *MenuService) Categories() []string {
	return s.catalog.Categories()
}

// ItemsByCategory returns all items in the category.
func (s *MenuService) ItemsByCategory(category string) []domain.MenuItem {
	return s.catalog.ItemsByCategory(category)
}

// ItemDetails resolves an item by id or case-insensitive name.
func (s *MenuService) ItemDetails(identifier string) (domain.MenuItem, error) {
	item, err := s.catalog.ItemByIdentifier(identifier)
	if err != nil {
		return domain.MenuItem{}, fmt.Errorf("item %q: %w", identifier, err)
	}
	return item, nil
}

// Find returns all items matching the criteria. Unrecognized dietary
// preference values match everything rather than erroring.
func (s *MenuService) Find(criteria domain.FilterCriteria) []domain.MenuItem {
	return s.catalog.Find(criteria)
}
