// Package mcp provides an MCP (Model Context Protocol) server for the
// vinyasa system.
package mcp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/utils"
)

type Config struct {
	// Retriever answers knowledge_search tool calls.
	Retriever *rag.Retriever

	// Flows answers plan_flow tool calls.
	Flows *flow.Service

	// Noop for empty MCP server
	Noop bool

	// Logger is the configured logger
	Logger *slog.Logger
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the knowledge and flow tools.
func NewServer(c Config) (*Server, error) {
	s := &Server{
		config: c,
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vinyasa",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	// A Noop server still speaks the protocol, it just registers no
	// tools. The handler is built in both modes so mounting it never
	// dereferences nil.
	if !c.Noop {
		if c.Retriever == nil {
			return nil, errors.New("retriever is required")
		}
		if c.Flows == nil {
			return nil, errors.New("flow service is required")
		}
		if c.Logger == nil {
			return nil, errors.New("logger is required")
		}

		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        searchToolName,
			Description: searchDescription,
		}, s.handleKnowledgeSearch)

		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        planFlowToolName,
			Description: planFlowDescription,
		}, s.handlePlanFlow)
	}

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}
