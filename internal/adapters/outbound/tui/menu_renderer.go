// Package tui renders menu and order data for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tableside/tableside/internal/domain"
)

// ── warm bistro palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	price   = lipgloss.Color("#A3E635") // lime
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fg)

	itemStyle    = lipgloss.NewStyle().Foreground(fg)
	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(price)
	veganStyle   = lipgloss.NewStyle().Foreground(success)
	separatorTop = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderMenu renders items grouped by category, preserving the catalog's
// category order.
func RenderMenu(categories []string, byCategory map[string][]domain.MenuItem) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("tableside"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("menu"))
	b.WriteString("\n")
	b.WriteString(separatorTop)
	b.WriteString("\n")

	for _, category := range categories {
		items := byCategory[category]
		if len(items) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(categoryStyle.Render(strings.ToUpper(category)))
		b.WriteString("\n")
		for _, item := range items {
			renderItemLine(&b, item)
		}
	}

	return b.String()
}

// RenderItem renders one item with its full details.
func RenderItem(item domain.MenuItem) string {
	var b strings.Builder

	b.WriteString(categoryStyle.Render(item.Name))
	b.WriteString("  ")
	b.WriteString(priceStyle.Render(fmt.Sprintf("%.2f", item.Price)))
	b.WriteString("\n")
	if item.Description != "" {
		b.WriteString(dimStyle.Render(item.Description))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("category: " + item.Category))
	b.WriteString("\n")
	if marks := dietMarks(item); marks != "" {
		b.WriteString(veganStyle.Render(marks))
		b.WriteString("\n")
	}
	if len(item.Allergens) > 0 {
		b.WriteString(faintStyle.Render("allergens: " + strings.Join(item.Allergens, ", ")))
		b.WriteString("\n")
	}

	return b.String()
}

func renderItemLine(b *strings.Builder, item domain.MenuItem) {
	name := itemStyle.Render(item.Name)
	id := faintStyle.Render("(" + item.ID + ")")
	amount := priceStyle.Render(fmt.Sprintf("%6.2f", item.Price))

	b.WriteString(fmt.Sprintf("  %s %s", name, id))
	if marks := dietMarks(item); marks != "" {
		b.WriteString(" ")
		b.WriteString(veganStyle.Render(marks))
	}
	b.WriteString("  ")
	b.WriteString(amount)
	b.WriteString("\n")
}

func dietMarks(item domain.MenuItem) string {
	var marks []string
	if item.IsVegan {
		marks = append(marks, "vegan")
	} else if item.IsVegetarian {
		marks = append(marks, "veg")
	}
	if item.IsGlutenFree {
		marks = append(marks, "gf")
	}
	if len(marks) == 0 {
		return ""
	}
	return "[" + strings.Join(marks, " ") + "]"
}
