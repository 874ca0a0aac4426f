package api

import (
	"log/slog"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/halfmoonlabs/vinyasa/api/mcp"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

// Deps are the collaborators the server hands requests to. Flows and
// Retriever are required; the rest degrade gracefully when absent.
type Deps struct {
	// Flows generates practice plans.
	Flows *flow.Service

	// Retriever answers knowledge queries and renders chat context.
	Retriever *rag.Retriever

	// Ingestor merges new knowledge. Nil disables the ingest endpoints.
	Ingestor *rag.Ingestor

	// Store serves the session endpoints. Nil means 404 for all of them.
	Store storage.Driver

	// LLM answers chat. Nil chat requests get a static pointer to
	// configuration instead of an error.
	LLM llm.Client

	// MCP, when set, is mounted at /mcp.
	MCP *mcp.Server

	Logger *slog.Logger
}

// Server is the vinyasa API server.
type Server struct {
	config Config
	deps   Deps
	logger *slog.Logger
	app    *fiber.App
}

// NewServer creates the API server and registers its routes.
func NewServer(config Config, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config: config,
		deps:   deps,
		logger: deps.Logger,
		app:    app,
	}

	app.Get("/healthz", s.handleHealth)

	v1 := app.Group("/api/v1")
	v1.Post("/chat", s.handleChat)
	v1.Post("/chat/stream", s.handleChatStream)
	v1.Post("/flow", s.handleFlow)
	v1.Get("/body-state", s.handleBodyState)
	v1.Get("/sessions/:id", s.handleGetSession)
	v1.Get("/sessions", s.handleListSessions)
	v1.Get("/users/:id", s.handleGetUser)
	v1.Post("/knowledge/search", s.handleKnowledgeSearch)
	v1.Post("/ingest", s.handleIngest)
	v1.Post("/ingest/text", s.handleIngestText)

	if deps.MCP != nil {
		app.All("/mcp", adaptor.HTTPHandler(deps.MCP.Handler()))
	}

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
