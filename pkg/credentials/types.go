package credentials

// Credentials is the on-disk shape of credentials.toml: one API key
// per LLM provider (groq, gemini).
type Credentials struct {
	Version   int                           `toml:"version"`
	Providers map[string]ProviderCredential `toml:"providers"`
}

// ProviderCredential holds the stored API key for one provider.
type ProviderCredential struct {
	APIKey string `toml:"api_key"`
}
