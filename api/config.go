// Package api provides the HTTP API server: chat (sync and streaming),
// flow planning, session retrieval, knowledge search, and ingest.
package api

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string
}
