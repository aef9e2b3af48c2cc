// Package mcp exposes window listing, moving and bounds resolution as MCP
// tools over stdio.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Litorud/wsize/internal/config"
	"github.com/Litorud/wsize/internal/platform"
)

const (
	ServerName    = "wsize"
	ServerVersion = "0.1.0"
)

// OpenFunc connects to the window system. The returned function releases
// the connection.
type OpenFunc func() (platform.Backend, func(), error)

// Server is the MCP server for window placement.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	open      OpenFunc
	logger    *slog.Logger
}

// NewServer creates a new MCP server. Each tool call opens its own
// window-system connection through open.
func NewServer(cfg *config.Config, open OpenFunc, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		config: cfg,
		open:   open,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("mcp server starting", "name", ServerName, "version", ServerVersion)
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the primary screen, virtual screen, work area and every visible titled window on the current desktop with its current rect.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move and resize every window whose title matches. Values are x, y, width, height of the visible frame in 96-DPI units; omitted trailing values keep the current ones. With adjust the window is kept on screen and off the taskbar.",
	}, s.handleMoveWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resolve_bounds",
		Description: "Compute the rect a window would be given, from its raw and visible rects, DPI and target values, without touching any window.",
	}, s.handleResolveBounds)
}
