package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tableside/tableside/internal/adapters/outbound/config"
	"github.com/tableside/tableside/internal/adapters/outbound/menu"
	"github.com/tableside/tableside/internal/adapters/outbound/tui"
	"github.com/tableside/tableside/internal/domain"
)

func newMenuCmd() *cobra.Command {
	var (
		menuPath   string
		category   string
		preference string
		maxPrice   float64
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu",
		Long:  "Render the menu in the terminal, optionally filtered by category, dietary preference, or price.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			if menuPath == "" {
				menuPath = cfg.MenuPath
			}

			catalog, err := menu.Open(menuPath)
			if err != nil {
				return fmt.Errorf("loading menu: %w", err)
			}

			criteria := domain.FilterCriteria{
				DietaryPreference: preference,
				Category:          category,
			}
			if cmd.Flags().Changed("max-price") {
				criteria.MaxPrice = &maxPrice
			}

			byCategory := make(map[string][]domain.MenuItem)
			for _, item := range catalog.Find(criteria) {
				byCategory[item.Category] = append(byCategory[item.Category], item)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(catalog.Categories(), byCategory))
			return nil
		},
	}

	cmd.Flags().StringVar(&menuPath, "menu", "", "Menu JSON file (defaults to the configured menu_path)")
	cmd.Flags().StringVar(&category, "category", "", "Show only this category")
	cmd.Flags().StringVar(&preference, "preference", "", "Dietary preference: vegetarian, vegan, or gluten_free")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Show only items at or below this price")

	return cmd
}
