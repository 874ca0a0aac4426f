package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
)

var (
	searchToolName    = "knowledge_search"
	searchDescription = "Search the yoga knowledge base for poses, alignment cues, contraindications, and benefits. Returns the most relevant entries for the query text."
)

// SearchInput represents the input arguments for the knowledge search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query text to find relevant knowledge entries"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"number of results to return (default: 5)"`
}

// SearchOutput represents the output of the knowledge search tool.
type SearchOutput struct {
	Query   string            `json:"query"`
	Results []knowledge.Entry `json:"results"`
	Count   int               `json:"count"`
}

// handleKnowledgeSearch processes a knowledge search request.
func (s *Server) handleKnowledgeSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	logger := s.config.Logger

	topK := input.TopK
	if topK <= 0 {
		topK = 5
	}

	logger.Debug("MCP knowledge search request",
		"query", input.Query,
		"topK", topK,
	)

	results := s.config.Retriever.Search(ctx, input.Query, topK)
	if results == nil {
		results = []knowledge.Entry{}
	}

	output := SearchOutput{
		Query:   input.Query,
		Results: results,
		Count:   len(results),
	}

	// Serialize the structured output as JSON for the text field
	// Per MCP spec: tools returning structured content should also return
	// serialized JSON in a TextContent block for backwards compatibility
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal search output", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize results: %v", err)},
			},
		}, SearchOutput{}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
