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

// registerTools registers the full tool surface on the given server.
func registerTools(s *server.MCPServer, deps Deps) {
	// 1. get_menu_categories
	s.AddTool(
		mcplib.NewTool("get_menu_categories",
			mcplib.WithDescription("Return all available menu categories"),
		),
		handleMenuCategories(deps.Menu),
	)

	// 2. list_items_by_category
	s.AddTool(
		mcplib.NewTool("list_items_by_category",
			mcplib.WithDescription("List all menu items in a specific category"),
			mcplib.WithString("category",
				mcplib.Required(),
				mcplib.Description("Category name, e.g. appetizers or mains"),
			),
		),
		handleItemsByCategory(deps.Menu),
	)

	// 3. get_item_details
	s.AddTool(
		mcplib.NewTool("get_item_details",
			mcplib.WithDescription("Get detailed information about a specific menu item by id or name"),
			mcplib.WithString("item_identifier",
				mcplib.Required(),
				mcplib.Description("Item id or case-insensitive item name"),
			),
		),
		handleItemDetails(deps.Menu),
	)

	// 4. find_items_by_criteria
	s.AddTool(
		mcplib.NewTool("find_items_by_criteria",
			mcplib.WithDescription("Find menu items by dietary preference, price, allergens, or category"),
			mcplib.WithString("dietary_preference",
				mcplib.Description("vegetarian, vegan, or gluten_free; unrecognized values are ignored"),
			),
			mcplib.WithNumber("max_price",
				mcplib.Description("Maximum item price, inclusive"),
			),
			mcplib.WithArray("exclude_allergens",
				mcplib.Description("Allergens that must not appear in the item"),
				mcplib.Items(map[string]any{"type": "string"}),
			),
			mcplib.WithString("category",
				mcplib.Description("Restrict to a single category, case-insensitive"),
			),
		),
		handleFindItems(deps.Menu),
	)

	// 5. create_cart
	s.AddTool(
		mcplib.NewTool("create_cart",
			mcplib.WithDescription("Create a new empty cart session and return its session_id"),
		),
		handleCreateCart(deps.Cart),
	)

	// 6. add_to_cart
	s.AddTool(
		mcplib.NewTool("add_to_cart",
			mcplib.WithDescription("Add an item to the session's cart; repeated adds increase the quantity"),
			mcplib.WithString("session_id",
				mcplib.Required(),
				mcplib.Description("Session id returned by create_cart"),
			),
			mcplib.WithString("item_id",
				mcplib.Required(),
				mcplib.Description("Menu item id"),
			),
			mcplib.WithNumber("quantity",
				mcplib.Description("How many to add (default 1)"),
			),
		),
		handleAddToCart(deps.Cart),
	)

	// 7. remove_from_cart
	s.AddTool(
		mcplib.NewTool("remove_from_cart",
			mcplib.WithDescription("Remove an item from the session's cart; removing an absent item is a no-op"),
			mcplib.WithString("session_id",
				mcplib.Required(),
				mcplib.Description("Session id returned by create_cart"),
			),
			mcplib.WithString("item_id",
				mcplib.Required(),
				mcplib.Description("Menu item id"),
			),
		),
		handleRemoveFromCart(deps.Cart),
	)

	// 8. get_cart
	s.AddTool(
		mcplib.NewTool("get_cart",
			mcplib.WithDescription("Get the current cart contents and total for a session"),
			mcplib.WithString("session_id",
				mcplib.Required(),
				mcplib.Description("Session id returned by create_cart"),
			),
		),
		handleGetCart(deps.Cart),
	)

	// 9. checkout
	s.AddTool(
		mcplib.NewTool("checkout",
			mcplib.WithDescription("Convert the session's cart into a confirmed order and clear the cart"),
			mcplib.WithString("session_id",
				mcplib.Required(),
				mcplib.Description("Session id returned by create_cart"),
			),
			mcplib.WithObject("customer_info",
				mcplib.Description("Opaque customer details stored on the order"),
			),
			mcplib.WithObject("payment_info",
				mcplib.Description("Payment details; only the method field is used (default credit_card)"),
			),
		),
		handleCheckout(deps.Checkout),
	)

	// 10. get_order_status
	s.AddTool(
		mcplib.NewTool("get_order_status",
			mcplib.WithDescription("Get the status of a specific order"),
			mcplib.WithString("order_id",
				mcplib.Required(),
				mcplib.Description("Order id returned by checkout"),
			),
		),
		handleOrderStatus(deps.Checkout),
	)

	// 11. list_orders
	s.AddTool(
		mcplib.NewTool("list_orders",
			mcplib.WithDescription("List all orders placed since the server started"),
		),
		handleListOrders(deps.Checkout),
	)
}

func handleMenuCategories(menu *application.MenuService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(menu.Categories())
	}
}

func handleItemsByCategory(menu *application.MenuService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		category, err := request.RequireString("category")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		items := menu.ItemsByCategory(category)
		if items == nil {
			items = []domain.MenuItem{}
		}
		return jsonResult(items)
	}
}

func handleItemDetails(menu *application.MenuService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		identifier, err := request.RequireString("item_identifier")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		item, err := menu.ItemDetails(identifier)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(item)
	}
}

func handleFindItems(menu *application.MenuService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		var criteria domain.FilterCriteria
		if v, ok := args["dietary_preference"].(string); ok {
			criteria.DietaryPreference = v
		}
		if v, ok := args["max_price"].(float64); ok {
			criteria.MaxPrice = &v
		}
		if v, ok := args["category"].(string); ok {
			criteria.Category = v
		}
		if raw, ok := args["exclude_allergens"].([]any); ok {
			for _, entry := range raw {
				if allergen, ok := entry.(string); ok {
					criteria.ExcludeAllergens = append(criteria.ExcludeAllergens, allergen)
				}
			}
		}

		items := menu.Find(criteria)
		if items == nil {
			items = []domain.MenuItem{}
		}
		return jsonResult(items)
	}
}

func handleCreateCart(cart *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(cart.CreateSession())
	}
}

func handleAddToCart(cart *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		itemID, err := request.RequireString("item_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		quantity := 1
		if v, ok := request.GetArguments()["quantity"].(float64); ok {
			quantity = int(v)
		}

		view, err := cart.AddItem(sessionID, itemID, quantity)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(view)
	}
}

func handleRemoveFromCart(cart *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		itemID, err := request.RequireString("item_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		view, err := cart.RemoveItem(sessionID, itemID)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(view)
	}
}

func handleGetCart(cart *application.CartService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		view, err := cart.GetCart(sessionID)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(view)
	}
}

func handleCheckout(checkout *application.CheckoutService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		sessionID, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		args := request.GetArguments()
		customer, _ := args["customer_info"].(map[string]any)

		paymentMethod := ""
		if payment, ok := args["payment_info"].(map[string]any); ok {
			if method, ok := payment["method"].(string); ok {
				paymentMethod = method
			}
		}

		result, err := checkout.Checkout(sessionID, customer, paymentMethod)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(result)
	}
}

func handleOrderStatus(checkout *application.CheckoutService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		orderID, err := request.RequireString("order_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		order, err := checkout.OrderStatus(orderID)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(map[string]domain.Order{"order": order})
	}
}

func handleListOrders(checkout *application.CheckoutService) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(checkout.ListOrders())
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result carrying an {"error": ...} payload.
// Failures are data for the caller to inspect, never transport errors.
func errorResult(msg string) *mcplib.CallToolResult {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
		IsError: true,
	}
}
