// Package servecmder provides the serve command that runs the vinyasa server.
package servecmder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/halfmoonlabs/vinyasa/api"
	"github.com/halfmoonlabs/vinyasa/api/mcp"
	"github.com/halfmoonlabs/vinyasa/pkg/config"
	"github.com/halfmoonlabs/vinyasa/pkg/credentials"
	"github.com/halfmoonlabs/vinyasa/pkg/dotdir"
	"github.com/halfmoonlabs/vinyasa/pkg/embeddings"
	embeddingutils "github.com/halfmoonlabs/vinyasa/pkg/embeddings/utils"
	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
	"github.com/halfmoonlabs/vinyasa/pkg/eventstream/kafka"
	"github.com/halfmoonlabs/vinyasa/pkg/eventstream/nop"
	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/llm/provider"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
	storageutils "github.com/halfmoonlabs/vinyasa/pkg/storage/utils"
	"github.com/halfmoonlabs/vinyasa/pkg/vector"
	vectorutils "github.com/halfmoonlabs/vinyasa/pkg/vector/utils"
	"github.com/halfmoonlabs/vinyasa/pkg/worker"
)

const (
	sessionDBFile = "vinyasa.db"
	vectorDBFile  = "vectors.db"
	knowledgeFile = "knowledge.json"
	serverLogFile = "server.log"
)

type ServeCommander struct {
	listen    string
	debug     bool
	configDir string
	cfg       *config.Config
	logger    *slog.Logger
}

const serveLongDesc string = `Run the vinyasa coaching server.

Serves the REST API (chat, flow planning, knowledge search, ingestion),
the streaming chat endpoint, and the MCP tool endpoint at /mcp.
Backends (session storage, vector store, event stream, LLM provider)
are wired from .vinyasa/config.toml; everything degrades gracefully
when a backend is not configured.`

const serveShortDesc string = "Run the vinyasa server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, err = cmd.Flags().GetString("config-dir")
			if err != nil {
				return fmt.Errorf("could not get config-dir flag: %v", err)
			}

			configer, err := config.NewConfiger(cmder.configDir)
			if err != nil {
				return fmt.Errorf("creating configer: %w", err)
			}
			cmder.cfg, err = configer.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			if !cmd.Flags().Changed("listen") {
				cmder.listen = cmder.cfg.Server.Listen
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", ":8080", "Address for the server to listen on")

	return cmd
}

func (c *ServeCommander) run() error {
	dataDir, err := dotdir.NewManager().Target(c.configDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	// Pretty logs on stdout, structured JSON in the data dir.
	logFile, err := os.OpenFile(filepath.Join(dataDir, serverLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening server log: %w", err)
	}
	defer logFile.Close()
	c.logger = logger.Multi(
		logger.New(logger.WithDebug(c.debug), logger.WithPretty(true)),
		logger.New(logger.WithDebug(c.debug), logger.WithJSON(true), logger.WithWriter(logFile)),
	)

	// Session storage
	store, err := c.createStore(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	// Knowledge base, watched for live edits to the knowledge file
	base := c.createKnowledgeBase(dataDir)

	// Semantic retrieval is optional: a missing vector store or embedder
	// degrades to keyword-only search.
	vectors, embedder := c.createSemanticBackends(dataDir)
	if vectors != nil {
		defer vectors.Close()
	}

	retriever := rag.New(rag.Config{
		Base:     base,
		Vectors:  vectors,
		Embedder: embedder,
		Logger:   c.logger,
	})

	// Event stream
	publisher, err := c.createPublisher()
	if err != nil {
		return err
	}
	defer publisher.Close()

	// LLM provider
	client, err := c.createLLM()
	if err != nil {
		return err
	}

	pool, err := worker.NewPool(&worker.Config{
		Driver:    store,
		Publisher: publisher,
		Retriever: retriever,
		Logger:    c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating worker pool: %w", err)
	}

	flows := flow.NewService(flow.ServiceConfig{
		LLM:       client,
		Retriever: retriever,
		Store:     store,
		Publisher: publisher,
		Pool:      pool,
		Logger:    c.logger,
	})

	ingestor := rag.NewIngestor(rag.IngestorConfig{
		Base:      base,
		Retriever: retriever,
		LLM:       client,
		Logger:    c.logger,
	})

	mcpServer, err := mcp.NewServer(mcp.Config{
		Retriever: retriever,
		Flows:     flows,
		Logger:    c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating mcp server: %w", err)
	}

	apiServer := api.NewServer(api.Config{ListenAddr: c.listen}, api.Deps{
		Flows:     flows,
		Retriever: retriever,
		Ingestor:  ingestor,
		Store:     store,
		LLM:       client,
		MCP:       mcpServer,
		Logger:    c.logger,
	})

	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	go func() {
		if err := base.Watch(watchCtx); err != nil {
			c.logger.Warn("knowledge watcher stopped", "error", err)
		}
	}()

	c.logger.Info("starting server",
		"listen", c.listen,
		"storage", c.cfg.Storage.Provider,
		"semantic_search", vectors != nil && embedder != nil,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := apiServer.Run(); err != nil {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		c.logger.Info("received signal, shutting down", "signal", sig.String())
	}

	if err := apiServer.Shutdown(); err != nil {
		c.logger.Warn("server shutdown", "error", err)
	}
	pool.Close()
	return nil
}

func (c *ServeCommander) createStore(dataDir string) (storage.Driver, error) {
	sqlitePath := c.cfg.Storage.SQLitePath
	if sqlitePath == "" {
		sqlitePath = filepath.Join(dataDir, sessionDBFile)
	}

	store, err := storageutils.NewDriver(context.Background(), &storageutils.NewDriverOpts{
		ProviderType: c.cfg.Storage.Provider,
		SQLitePath:   sqlitePath,
		PostgresDSN:  c.cfg.Storage.PostgresDSN,
		MongoURI:     c.cfg.Storage.MongoURI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session store: %w", err)
	}

	c.logger.Info("using session storage", "provider", c.cfg.Storage.Provider)
	return store, nil
}

func (c *ServeCommander) createKnowledgeBase(dataDir string) *knowledge.Base {
	path := c.cfg.RAG.KnowledgeFile
	if path == "" {
		path = filepath.Join(dataDir, knowledgeFile)
	}
	return knowledge.New(knowledge.Config{
		Path:   path,
		Logger: c.logger,
	})
}

// createSemanticBackends wires the vector store and the embedder. Both
// are needed for semantic search; if either fails the server logs a
// warning and retrieval falls back to keyword matching.
func (c *ServeCommander) createSemanticBackends(dataDir string) (vector.VectorDriver, embeddings.Embedder) {
	if !c.cfg.RAG.Enabled {
		c.logger.Info("rag disabled, retrieval is keyword-only")
		return nil, nil
	}

	vectorPath := c.cfg.VectorStore.Path
	if vectorPath == "" {
		vectorPath = filepath.Join(dataDir, vectorDBFile)
	}

	vectors, err := vectorutils.NewVectorDriver(&vectorutils.NewVectorDriverOpts{
		ProviderType: c.cfg.VectorStore.Provider,
		TargetURL:    c.cfg.VectorStore.Target,
		DBPath:       vectorPath,
		Dimensions:   c.cfg.Embedding.Dimensions,
		Logger:       c.logger,
	})
	if err != nil {
		c.logger.Warn("vector store unavailable, retrieval is keyword-only", "error", err)
		return nil, nil
	}

	embedder, err := embeddingutils.NewEmbedder(&embeddingutils.NewEmbedderOpts{
		ProviderType: c.cfg.Embedding.Provider,
		TargetURL:    c.cfg.Embedding.Target,
		Model:        c.cfg.Embedding.Model,
	})
	if err != nil {
		c.logger.Warn("embedder unavailable, retrieval is keyword-only", "error", err)
		vectors.Close()
		return nil, nil
	}

	return vectors, embedder
}

func (c *ServeCommander) createPublisher() (eventstream.Publisher, error) {
	if c.cfg.Events.Provider != "kafka" {
		return nop.NewPublisher(), nil
	}

	publisher, err := kafka.NewPublisher(kafka.Config{
		Brokers: strings.Split(c.cfg.Events.Brokers, ","),
		Topic:   c.cfg.Events.Topic,
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("creating kafka publisher: %w", err)
	}

	c.logger.Info("publishing session events", "topic", c.cfg.Events.Topic)
	return publisher, nil
}

// createLLM detects the configured provider. Running without one is
// supported: flow plans fall back to deterministic sequencing and chat
// answers with a pointer to auth setup.
func (c *ServeCommander) createLLM() (llm.Client, error) {
	creds, err := credentials.NewManager(c.configDir)
	if err != nil {
		return nil, fmt.Errorf("creating credentials manager: %w", err)
	}

	client, err := provider.Detect(provider.DetectOpts{
		Provider:     c.cfg.LLM.Provider,
		Model:        c.cfg.LLM.Model,
		GroqTarget:   c.cfg.LLM.GroqTarget,
		GeminiTarget: c.cfg.LLM.GeminiTarget,
		OllamaTarget: c.cfg.LLM.OllamaTarget,
		ResolveKey: func(p string) string {
			key, err := creds.ResolveKey(p)
			if err != nil {
				return ""
			}
			return key
		},
	})
	if err != nil {
		if errors.Is(err, provider.ErrNoProvider) {
			c.logger.Warn("no llm provider configured, running with deterministic fallbacks")
			return nil, nil
		}
		return nil, fmt.Errorf("detecting llm provider: %w", err)
	}

	c.logger.Info("using llm provider", "provider", client.Name())
	return client, nil
}
