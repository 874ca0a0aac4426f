package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent vinyasa configuration stored as config.toml
// in the .vinyasa/ directory. The TOML layout uses sections for logical grouping.
type Config struct {
	Version     int               `toml:"version"`
	Server      ServerConfig      `toml:"server"`
	Client      ClientConfig      `toml:"client"`
	LLM         LLMConfig         `toml:"llm"`
	Storage     StorageConfig     `toml:"storage"`
	VectorStore VectorStoreConfig `toml:"vector_store"`
	Embedding   EmbeddingConfig   `toml:"embedding"`
	Events      EventsConfig      `toml:"events"`
	RAG         RAGConfig         `toml:"rag"`
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// ClientConfig holds settings for CLI commands that connect to a running
// vinyasa server (e.g. vinyasa chat, vinyasa flow, vinyasa status).
// Target is a full URL (scheme + host + port).
type ClientConfig struct {
	Target string `toml:"target,omitempty"`
}

// LLMConfig holds language model provider settings.
type LLMConfig struct {
	// Provider selects the text generation backend: "auto", "groq",
	// "gemini", or "ollama". "auto" picks by configured credentials.
	Provider string `toml:"provider,omitempty"`

	// Model overrides the provider's default model name.
	Model string `toml:"model,omitempty"`

	// Temperature is the sampling temperature passed through to providers.
	Temperature float64 `toml:"temperature,omitempty"`

	GroqTarget   string `toml:"groq_target,omitempty"`
	GeminiTarget string `toml:"gemini_target,omitempty"`
	OllamaTarget string `toml:"ollama_target,omitempty"`
}

// StorageConfig holds session storage settings.
type StorageConfig struct {
	// Provider selects the storage driver: "inmemory", "sqlite",
	// "postgres", or "mongo".
	Provider    string `toml:"provider,omitempty"`
	SQLitePath  string `toml:"sqlite_path,omitempty"`
	PostgresDSN string `toml:"postgres_dsn,omitempty"`
	MongoURI    string `toml:"mongo_uri,omitempty"`
}

// VectorStoreConfig holds vector store settings for semantic retrieval.
type VectorStoreConfig struct {
	// Provider selects the vector driver: "sqlite" or "chroma".
	Provider string `toml:"provider,omitempty"`

	// Target is the vector service URL (chroma).
	Target string `toml:"target,omitempty"`

	// Path is the vector database file (sqlite).
	Path string `toml:"path,omitempty"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Target     string `toml:"target,omitempty"`
	Model      string `toml:"model,omitempty"`
	Dimensions uint   `toml:"dimensions,omitempty"`
}

// EventsConfig holds session event publishing settings.
type EventsConfig struct {
	// Provider selects the publisher: "" (disabled) or "kafka".
	Provider string `toml:"provider,omitempty"`

	// Brokers is a comma-separated broker list.
	Brokers string `toml:"brokers,omitempty"`

	Topic string `toml:"topic,omitempty"`
}

// RAGConfig holds knowledge retrieval settings.
type RAGConfig struct {
	Enabled bool `toml:"enabled"`

	// KnowledgeFile overrides the default .vinyasa/knowledge.json location.
	KnowledgeFile string `toml:"knowledge_file,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"server.listen": {
		get: func(c *Config) string { return c.Server.Listen },
		set: func(c *Config, v string) error { c.Server.Listen = v; return nil },
	},
	"client.target": {
		get: func(c *Config) string { return c.Client.Target },
		set: func(c *Config, v string) error { c.Client.Target = v; return nil },
	},
	"llm.provider": {
		get: func(c *Config) string { return c.LLM.Provider },
		set: func(c *Config, v string) error { c.LLM.Provider = v; return nil },
	},
	"llm.model": {
		get: func(c *Config) string { return c.LLM.Model },
		set: func(c *Config, v string) error { c.LLM.Model = v; return nil },
	},
	"llm.temperature": {
		get: func(c *Config) string {
			if c.LLM.Temperature == 0 {
				return ""
			}
			return strconv.FormatFloat(c.LLM.Temperature, 'f', -1, 64)
		},
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for llm.temperature: %w", err)
			}
			c.LLM.Temperature = f
			return nil
		},
	},
	"llm.groq_target": {
		get: func(c *Config) string { return c.LLM.GroqTarget },
		set: func(c *Config, v string) error { c.LLM.GroqTarget = v; return nil },
	},
	"llm.gemini_target": {
		get: func(c *Config) string { return c.LLM.GeminiTarget },
		set: func(c *Config, v string) error { c.LLM.GeminiTarget = v; return nil },
	},
	"llm.ollama_target": {
		get: func(c *Config) string { return c.LLM.OllamaTarget },
		set: func(c *Config, v string) error { c.LLM.OllamaTarget = v; return nil },
	},
	"storage.provider": {
		get: func(c *Config) string { return c.Storage.Provider },
		set: func(c *Config, v string) error { c.Storage.Provider = v; return nil },
	},
	"storage.sqlite_path": {
		get: func(c *Config) string { return c.Storage.SQLitePath },
		set: func(c *Config, v string) error { c.Storage.SQLitePath = v; return nil },
	},
	"storage.postgres_dsn": {
		get: func(c *Config) string { return c.Storage.PostgresDSN },
		set: func(c *Config, v string) error { c.Storage.PostgresDSN = v; return nil },
	},
	"storage.mongo_uri": {
		get: func(c *Config) string { return c.Storage.MongoURI },
		set: func(c *Config, v string) error { c.Storage.MongoURI = v; return nil },
	},
	"vector_store.provider": {
		get: func(c *Config) string { return c.VectorStore.Provider },
		set: func(c *Config, v string) error { c.VectorStore.Provider = v; return nil },
	},
	"vector_store.target": {
		get: func(c *Config) string { return c.VectorStore.Target },
		set: func(c *Config, v string) error { c.VectorStore.Target = v; return nil },
	},
	"vector_store.path": {
		get: func(c *Config) string { return c.VectorStore.Path },
		set: func(c *Config, v string) error { c.VectorStore.Path = v; return nil },
	},
	"embedding.provider": {
		get: func(c *Config) string { return c.Embedding.Provider },
		set: func(c *Config, v string) error { c.Embedding.Provider = v; return nil },
	},
	"embedding.target": {
		get: func(c *Config) string { return c.Embedding.Target },
		set: func(c *Config, v string) error { c.Embedding.Target = v; return nil },
	},
	"embedding.model": {
		get: func(c *Config) string { return c.Embedding.Model },
		set: func(c *Config, v string) error { c.Embedding.Model = v; return nil },
	},
	"embedding.dimensions": {
		get: func(c *Config) string {
			if c.Embedding.Dimensions == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Embedding.Dimensions), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for embedding.dimensions: %w", err)
			}
			c.Embedding.Dimensions = uint(n)
			return nil
		},
	},
	"events.provider": {
		get: func(c *Config) string { return c.Events.Provider },
		set: func(c *Config, v string) error { c.Events.Provider = v; return nil },
	},
	"events.brokers": {
		get: func(c *Config) string { return c.Events.Brokers },
		set: func(c *Config, v string) error { c.Events.Brokers = v; return nil },
	},
	"events.topic": {
		get: func(c *Config) string { return c.Events.Topic },
		set: func(c *Config, v string) error { c.Events.Topic = v; return nil },
	},
	"rag.enabled": {
		get: func(c *Config) string { return strconv.FormatBool(c.RAG.Enabled) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for rag.enabled: %w", err)
			}
			c.RAG.Enabled = b
			return nil
		},
	},
	"rag.knowledge_file": {
		get: func(c *Config) string { return c.RAG.KnowledgeFile },
		set: func(c *Config, v string) error { c.RAG.KnowledgeFile = v; return nil },
	},
}
