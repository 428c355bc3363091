package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/tableside/tableside/internal/adapters/inbound/mcp"
	"github.com/tableside/tableside/internal/adapters/outbound/config"
	"github.com/tableside/tableside/internal/adapters/outbound/memstore"
	"github.com/tableside/tableside/internal/adapters/outbound/menu"
	"github.com/tableside/tableside/internal/application"
	"github.com/tableside/tableside/internal/domain"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the tableside MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var (
		menuPath string
		sseAddr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the tableside MCP server",
		Long:  "Start the MCP server over stdio (default) or SSE. Sessions and orders live in memory for the server's lifetime.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			if menuPath != "" {
				cfg.MenuPath = menuPath
			}

			catalog, err := menu.Open(cfg.MenuPath)
			if err != nil {
				return fmt.Errorf("loading menu: %w", err)
			}

			// stdout belongs to the stdio transport; logs go to stderr.
			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			sessions := memstore.NewSessions()
			orders := memstore.NewOrders()
			deps := mcpadapter.Deps{
				Menu:     application.NewMenuService(catalog),
				Cart:     application.NewCartService(sessions, catalog),
				Checkout: application.NewCheckoutService(sessions, orders),
			}

			if cfg.SessionTTL > 0 {
				go sweepSessions(logger, sessions, cfg.SessionTTL, cfg.SweepInterval)
			}

			s := mcpadapter.NewTablesideMCPServer(cfg.ServerName, deps)
			logger.Info("starting MCP server",
				"name", cfg.ServerName,
				"menu_items", catalog.Len(),
				"session_ttl", cfg.SessionTTL.String(),
			)

			if sseAddr != "" {
				return server.NewSSEServer(s).Start(sseAddr)
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&menuPath, "menu", "", "Menu JSON file (defaults to the configured menu_path)")
	cmd.Flags().StringVar(&sseAddr, "sse", "", "Serve over SSE on this address (e.g. :8080) instead of stdio")

	return cmd
}

// sweepSessions periodically evicts sessions idle for longer than ttl.
// It runs for the process lifetime.
func sweepSessions(logger *slog.Logger, sessions domain.SessionStore, ttl, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for range ticker.C {
		if n := sessions.EvictIdle(time.Now().Add(-ttl)); n > 0 {
			logger.Info("evicted idle sessions", "count", n, "remaining", sessions.Len())
		}
	}
}
