package config

const (
	defaultServerListen = ":8080"
	defaultClientTarget = "http://localhost:8080"

	defaultLLMProvider  = "auto"
	defaultTemperature  = 0.5
	defaultGroqTarget   = "https://api.groq.com/openai/v1"
	defaultGeminiTarget = "https://generativelanguage.googleapis.com/v1beta"
	defaultOllamaTarget = "http://localhost:11434"

	defaultStorageProvider = "sqlite"

	defaultVectorProvider = "sqlite"

	defaultEmbeddingProvider   = "ollama"
	defaultEmbeddingTarget     = "http://localhost:11434"
	defaultEmbeddingModel      = "embeddinggemma"
	defaultEmbeddingDimensions = 768

	defaultEventsTopic = "vinyasa.sessions"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Server: ServerConfig{
			Listen: defaultServerListen,
		},
		Client: ClientConfig{
			Target: defaultClientTarget,
		},
		LLM: LLMConfig{
			Provider:     defaultLLMProvider,
			Temperature:  defaultTemperature,
			GroqTarget:   defaultGroqTarget,
			GeminiTarget: defaultGeminiTarget,
			OllamaTarget: defaultOllamaTarget,
		},
		Storage: StorageConfig{
			Provider: defaultStorageProvider,
		},
		VectorStore: VectorStoreConfig{
			Provider: defaultVectorProvider,
		},
		Embedding: EmbeddingConfig{
			Provider:   defaultEmbeddingProvider,
			Target:     defaultEmbeddingTarget,
			Model:      defaultEmbeddingModel,
			Dimensions: defaultEmbeddingDimensions,
		},
		Events: EventsConfig{
			Topic: defaultEventsTopic,
		},
		RAG: RAGConfig{
			Enabled: true,
		},
	}
}
