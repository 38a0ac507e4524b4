// Package mcp assembles the MCP server: tool registration, the
// streamable HTTP transport and the middleware in front of it.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tallyops/xero-mcp/internal/auth"
	"github.com/tallyops/xero-mcp/internal/tools"
)

// Config holds MCP server configuration.
type Config struct {
	Name    string
	Version string
	// BaseURL is the default Xero API root. A per-request Xero-Base-Url
	// header overrides it.
	BaseURL string
	Logger  *slog.Logger
	// HTTPClient substitutes the outbound client, for tests.
	HTTPClient *http.Client
}

// Server wraps the MCP SDK server with the registered tool set.
type Server struct {
	mcpServer *mcp.Server
	logger    *slog.Logger
	toolCount int
}

// NewServer builds the server and registers every tool.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, nil)

	count, err := tools.Register(mcpServer, tools.Deps{
		Logger:     logger,
		BaseURL:    cfg.BaseURL,
		HTTPClient: cfg.HTTPClient,
	})
	if err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	return &Server{
		mcpServer: mcpServer,
		logger:    logger,
		toolCount: count,
	}, nil
}

// ToolCount reports how many tools are registered.
func (s *Server) ToolCount() int {
	return s.toolCount
}

// Run serves the MCP protocol on the given transport. Blocking; used
// for stdio, the HTTP path goes through HTTPHandler.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// HTTPHandler returns the streamable HTTP endpoint wrapped in the
// middleware stack (outermost first): Recovery → Logging → Credentials.
// Every request shares the one stateful server instance.
func (s *Server) HTTPHandler() http.Handler {
	var handler http.Handler = mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	handler = auth.Middleware()(handler)
	handler = loggingMiddleware(s.logger)(handler)
	handler = recoveryMiddleware(s.logger)(handler)
	return handler
}
