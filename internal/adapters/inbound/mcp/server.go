package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/tableside/tableside/internal/application"
)

// Deps bundles the application services the MCP tools and resources call
// into. The services share one session store and one order ledger for
// the server's lifetime.
type Deps struct {
	Menu     *application.MenuService
	Cart     *application.CartService
	Checkout *application.CheckoutService
}

// NewTablesideMCPServer creates an MCP server with all catalog, cart,
// and ordering tools registered, plus the read-only menu resources.
func NewTablesideMCPServer(name string, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, deps)
	registerResources(s, deps.Menu)

	return s
}
