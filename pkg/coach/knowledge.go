package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
)

// knowledgeSearchRequest queries the server's knowledge base.
type knowledgeSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// knowledgeSearchResponse carries the matched entries.
type knowledgeSearchResponse struct {
	Query   string            `json:"query"`
	Results []knowledge.Entry `json:"results"`
	Count   int               `json:"count"`
}

// ingestRequest merges structured entries into the knowledge base.
type ingestRequest struct {
	Entries []knowledge.Entry `json:"entries"`
}

// ingestResponse reports a structured-entry ingest.
type ingestResponse struct {
	Saved int    `json:"saved"`
	Path  string `json:"path"`
}

// IngestReport is the server's summary of a freeform text ingest.
type IngestReport struct {
	Ingested int      `json:"ingested"`
	Poses    []string `json:"poses"`
	Path     string   `json:"path"`
	Message  string   `json:"message"`
}

// SearchKnowledge queries the server's knowledge base. A limit of zero
// accepts the server default.
func (c *Client) SearchKnowledge(ctx context.Context, query string, limit int) ([]knowledge.Entry, error) {
	var out knowledgeSearchResponse
	if err := c.postJSON(ctx, "/api/v1/knowledge/search", knowledgeSearchRequest{Query: query, Limit: limit}, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// IngestEntries merges already-structured knowledge entries into the
// server's knowledge base and returns how many were saved.
func (c *Client) IngestEntries(ctx context.Context, entries []knowledge.Entry) (int, error) {
	var out ingestResponse
	if err := c.postJSON(ctx, "/api/v1/ingest", ingestRequest{Entries: entries}, &out); err != nil {
		return 0, err
	}
	return out.Saved, nil
}

// IngestText submits freeform yoga text for extraction into the
// server's knowledge base. Philosophy switches the extraction to
// topic/sutra entries instead of physical poses.
func (c *Client) IngestText(ctx context.Context, text string, philosophy bool) (*IngestReport, error) {
	url := c.target + "/api/v1/ingest/text"
	if philosophy {
		url += "?philosophy=true"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("creating ingest request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reaching server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var report IngestReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding ingest response: %w", err)
	}
	return &report, nil
}
