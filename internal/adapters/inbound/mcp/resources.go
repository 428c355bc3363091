package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tableside/tableside/internal/application"
	"github.com/tableside/tableside/internal/domain"
)

// registerResources exposes the read-only menu as MCP resources.
func registerResources(s *server.MCPServer, menu *application.MenuService) {
	// 1. menu://items - the full menu
	s.AddResource(
		mcplib.NewResource(
			"menu://items",
			"Menu",
			mcplib.WithResourceDescription("All menu items with prices, dietary flags, and allergens"),
			mcplib.WithMIMEType("application/json"),
		),
		handleMenuResource(menu),
	)

	// 2. menu://categories - category names
	s.AddResource(
		mcplib.NewResource(
			"menu://categories",
			"Menu Categories",
			mcplib.WithResourceDescription("Sorted list of menu category names"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCategoriesResource(menu),
	)

	// 3. menu://items/{identifier} - one item by id or name
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"menu://items/{identifier}",
			"Menu Item",
			mcplib.WithTemplateDescription("A single menu item looked up by id or case-insensitive name"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleItemResource(menu),
	)
}

func handleMenuResource(menu *application.MenuService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		items := menu.Find(domain.FilterCriteria{})
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling menu: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "menu://items",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleCategoriesResource(menu *application.MenuService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(menu.Categories(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling categories: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "menu://categories",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleItemResource(menu *application.MenuService) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		identifier, ok := request.Params.Arguments["identifier"].(string)
		if !ok || identifier == "" {
			return nil, fmt.Errorf("item identifier is required")
		}

		item, err := menu.ItemDetails(identifier)
		if err != nil {
			return nil, err
		}

		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling item: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
