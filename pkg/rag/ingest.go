package rag

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
)

// ChunkChars caps how much text goes into one extraction call; longer
// documents are split at paragraph boundaries and processed in passes.
const ChunkChars = 90_000

// extractTemperature keeps extraction output close to the source text.
const extractTemperature = 0.3

// ErrNoExtractor is returned by IngestText when no language model is
// configured to extract structured entries from freeform text.
var ErrNoExtractor = errors.New("text ingest requires a configured llm provider")

const asanaExtractPrompt = `Extract yoga pose knowledge from the following text and return as JSON array.
Each entry should have: pose, alignment (array), contraindications (array), benefits (array), breathing (string), modifications (string).

Text:
%s

Return only valid JSON array, no other text.`

const philosophyExtractPrompt = `The following text is yoga philosophy (e.g. the Yoga Sutras), NOT physical asana. Extract by topic/sutra/chapter. Return a JSON array. Each entry: "pose" = topic id (e.g. sutra_1_1, sutra_samadhi), "alignment" = key concepts or [], "contraindications" = [], "benefits" = main teachings, "breathing" = pranayama/meditation where relevant, "modifications" = "".

Text:
%s

Return only valid JSON array, no other text.`

// Ingestor merges new knowledge into the knowledge file and keeps the
// in-memory base and the vector index in step with it.
type Ingestor struct {
	base      *knowledge.Base
	retriever *Retriever
	llm       llm.Client
	logger    *slog.Logger
}

// IngestorConfig wires an Ingestor. LLM is only needed for IngestText.
type IngestorConfig struct {
	Base      *knowledge.Base
	Retriever *Retriever
	LLM       llm.Client
	Logger    *slog.Logger
}

// NewIngestor builds an Ingestor. A nil Base gets the builtin knowledge.
func NewIngestor(cfg IngestorConfig) *Ingestor {
	i := &Ingestor{
		base:      cfg.Base,
		retriever: cfg.Retriever,
		llm:       cfg.LLM,
		logger:    cfg.Logger,
	}
	if i.base == nil {
		i.base = knowledge.New(knowledge.Config{})
	}
	if i.logger == nil {
		i.logger = logger.Nop()
	}
	return i
}

// SaveEntries merges entries into the knowledge file by pose name (new
// entries win), reloads the base, and reindexes the entries for
// semantic search. It returns the total entry count now in the file.
func (i *Ingestor) SaveEntries(ctx context.Context, entries []knowledge.Entry) (int, error) {
	if len(entries) == 0 {
		return 0, errors.New("at least one entry is required")
	}
	if i.base.Path() == "" {
		return 0, errors.New("no knowledge file configured")
	}

	saved, err := knowledge.Save(entries, i.base.Path(), true)
	if err != nil {
		return 0, fmt.Errorf("saving knowledge entries: %w", err)
	}

	if err := i.base.Reload(); err != nil {
		i.logger.Warn("reloading knowledge base after ingest", "error", err)
	}

	if i.retriever != nil {
		if err := i.retriever.IndexEntries(ctx, entries); err != nil {
			i.logger.Warn("indexing ingested entries", "error", err)
		}
	}

	i.logger.Info("knowledge entries saved",
		"new", len(entries), "total", saved, "path", i.base.Path())
	return saved, nil
}

// IngestText extracts structured entries from freeform text with the
// language model and saves them. Long texts are chunked; entries are
// de-duplicated by pose id across chunks, first chunk wins. Philosophy
// sources use topic ids instead of pose names.
func (i *Ingestor) IngestText(ctx context.Context, text string, philosophy bool) ([]knowledge.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text is empty")
	}
	if i.llm == nil {
		return nil, ErrNoExtractor
	}

	chunks := chunkText(text, ChunkChars)
	if len(chunks) > 1 {
		i.logger.Info("long text chunked for extraction",
			"chars", len(text), "chunks", len(chunks), "philosophy", philosophy)
	}

	var all []knowledge.Entry
	seen := map[string]bool{}
	for n, chunk := range chunks {
		entries, err := i.extract(ctx, chunk, philosophy)
		if err != nil {
			return nil, fmt.Errorf("extracting chunk %d/%d: %w", n+1, len(chunks), err)
		}
		for _, e := range entries {
			if e.Pose == "" || seen[e.Pose] {
				continue
			}
			seen[e.Pose] = true
			all = append(all, e)
		}
	}

	if len(all) == 0 {
		return nil, nil
	}
	if _, err := i.SaveEntries(ctx, all); err != nil {
		return nil, err
	}
	return all, nil
}

func (i *Ingestor) extract(ctx context.Context, text string, philosophy bool) ([]knowledge.Entry, error) {
	template := asanaExtractPrompt
	if philosophy {
		template = philosophyExtractPrompt
	}

	raw, err := i.llm.Generate(ctx, llm.Request{
		Prompt:      fmt.Sprintf(template, text),
		Temperature: extractTemperature,
	})
	if err != nil {
		return nil, err
	}

	var entries []knowledge.Entry
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &entries); err != nil {
		return nil, fmt.Errorf("parsing extracted entries: %w", err)
	}
	return entries, nil
}

// chunkText splits text into pieces of at most size characters,
// preferring to break at a paragraph and then a line boundary when one
// falls in the second half of the chunk.
func chunkText(text string, size int) []string {
	if len(text) <= size {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	var chunks []string
	for start := 0; start < len(text); {
		end := min(start+size, len(text))
		piece := text[start:end]
		if end < len(text) {
			breakAt := strings.LastIndex(piece, "\n\n")
			if breakAt <= size/2 {
				breakAt = strings.LastIndex(piece, "\n")
			}
			if breakAt > size/2 {
				piece = text[start : start+breakAt+1]
				end = start + breakAt + 1
			}
		}
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			chunks = append(chunks, trimmed)
		}
		start = end
	}
	return chunks
}
