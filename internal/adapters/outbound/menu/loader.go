package menu

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tableside/tableside/internal/domain"
)

//go:embed default_menu.json
var defaultMenu []byte

// Load reads a menu JSON file and builds a catalog from it.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu: %w", err)
	}

	items, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return NewCatalog(items)
}

// LoadDefault builds a catalog from the menu data compiled into the
// binary.
func LoadDefault() (*Catalog, error) {
	items, err := parse(defaultMenu)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded menu: %w", err)
	}
	return NewCatalog(items)
}

// Open loads the menu at path, falling back to the embedded default menu
// when no file exists there.
func Open(path string) (*Catalog, error) {
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return LoadDefault()
	}
	return c, err
}

func parse(data []byte) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu contains no items")
	}
	return items, nil
}
