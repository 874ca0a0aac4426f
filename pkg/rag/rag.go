// Package rag retrieves yoga knowledge as context for flow generation
// and chat. Retrieval is hybrid: semantic search through a vector store
// when one is configured, merged with keyword search over the knowledge
// base. Both sides are optional degradations, not failures.
package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/cycle"
	"github.com/halfmoonlabs/vinyasa/pkg/embeddings"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/pose"
	"github.com/halfmoonlabs/vinyasa/pkg/utils"
	"github.com/halfmoonlabs/vinyasa/pkg/vector"
)

// DefaultChatLimit caps how many entries are rendered into chat context.
const DefaultChatLimit = 6

// DefaultBreathing is attached to poses that have no knowledge entry.
const DefaultBreathing = "Breathe deeply and steadily"

// EnrichedPose is a catalog pose with its knowledge attached for cue
// writing and session output.
type EnrichedPose struct {
	pose.Pose
	AlignmentCues     []string `json:"alignment_cues"`
	Contraindications []string `json:"contraindications"`
	Benefits          []string `json:"benefits"`
	BreathingGuidance string   `json:"breathing_guidance"`
	Modifications     string   `json:"modifications"`
}

// SafetyNotes summarizes what to avoid for a pose in a cycle phase.
type SafetyNotes struct {
	Contraindications []string `json:"contraindications"`
	CycleNotes        string   `json:"cycle_specific_notes"`
}

// Config configures a Retriever. Vectors and Embedder are both required
// for semantic search; with either missing the retriever is keyword-only.
type Config struct {
	Base     *knowledge.Base
	Vectors  vector.VectorDriver
	Embedder embeddings.Embedder
	Logger   *slog.Logger
}

// Retriever answers knowledge queries and enriches pose candidates.
type Retriever struct {
	base     *knowledge.Base
	vectors  vector.VectorDriver
	embedder embeddings.Embedder
	logger   *slog.Logger
}

// New builds a Retriever. A nil Base gets the builtin knowledge.
func New(cfg Config) *Retriever {
	r := &Retriever{
		base:     cfg.Base,
		vectors:  cfg.Vectors,
		embedder: cfg.Embedder,
		logger:   cfg.Logger,
	}
	if r.base == nil {
		r.base = knowledge.New(knowledge.Config{})
	}
	if r.logger == nil {
		r.logger = logger.Nop()
	}
	return r
}

// Base returns the underlying knowledge base.
func (r *Retriever) Base() *knowledge.Base { return r.base }

// Search returns up to limit knowledge entries for the query. Semantic
// hits come first, then keyword hits, de-duplicated by pose name.
func (r *Retriever) Search(ctx context.Context, query string, limit int) []knowledge.Entry {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultChatLimit
	}

	var out []knowledge.Entry
	seen := make(map[string]bool)

	for _, res := range r.semantic(ctx, query, limit) {
		if seen[res.Pose] {
			continue
		}
		if entry, ok := r.base.ByPose(res.Pose); ok {
			seen[res.Pose] = true
			out = append(out, entry)
		}
	}

	for _, entry := range r.base.Search(query, limit) {
		if seen[entry.Pose] {
			continue
		}
		seen[entry.Pose] = true
		out = append(out, entry)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (r *Retriever) semantic(ctx context.Context, query string, topK int) []vector.QueryResult {
	if r.vectors == nil || r.embedder == nil {
		return nil
	}

	embedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		r.logger.Warn("embedding retrieval query", "error", err)
		return nil
	}

	results, err := r.vectors.Query(ctx, embedding, topK)
	if err != nil {
		r.logger.Warn("querying vector store", "error", err)
		return nil
	}
	return results
}

// ContextFor renders the best matches for the query as markdown context
// for the chat system prompt. An empty string means no matches; the
// model then answers from general knowledge.
func (r *Retriever) ContextFor(ctx context.Context, query string) string {
	entries := r.Search(ctx, query, DefaultChatLimit)
	if len(entries) == 0 {
		r.logger.Info("no knowledge context for query", "query", utils.Truncate(query, 80))
		return ""
	}

	blocks := make([]string, len(entries))
	poses := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = e.Markdown()
		poses[i] = e.Pose
	}
	r.logger.Info("retrieved knowledge context", "matches", len(entries), "poses", poses)
	return strings.Join(blocks, "\n\n")
}

// EnrichPoses attaches knowledge to each pose candidate. Poses without
// an entry get empty notes and a safe breathing default.
func (r *Retriever) EnrichPoses(poses []pose.Pose) []EnrichedPose {
	out := make([]EnrichedPose, 0, len(poses))
	for _, p := range poses {
		e := EnrichedPose{Pose: p, BreathingGuidance: DefaultBreathing}
		if entry, ok := r.base.ByPose(p.Name); ok {
			e.AlignmentCues = entry.Alignment
			e.Contraindications = entry.Contraindications
			e.Benefits = entry.Benefits
			e.BreathingGuidance = entry.Breathing
			e.Modifications = entry.Modifications
		}
		out = append(out, e)
	}
	return out
}

// SafetyNotesFor returns a pose's contraindications and any
// phase-specific caution.
func (r *Retriever) SafetyNotesFor(poseName string, phase cycle.Phase) SafetyNotes {
	notes := SafetyNotes{Contraindications: []string{}}
	if entry, ok := r.base.ByPose(poseName); ok && entry.Contraindications != nil {
		notes.Contraindications = entry.Contraindications
	}
	if phase == cycle.Menstrual && (strings.Contains(poseName, "inversion") || strings.Contains(poseName, "headstand")) {
		notes.CycleNotes = "Avoid inversions during menstrual phase"
	}
	return notes
}

// IndexEntries embeds entries and upserts them into the vector store so
// semantic search covers them. It is a no-op without both a vector
// store and an embedder.
func (r *Retriever) IndexEntries(ctx context.Context, entries []knowledge.Entry) error {
	if r.vectors == nil || r.embedder == nil {
		return nil
	}

	docs := make([]vector.Document, 0, len(entries))
	for _, entry := range entries {
		if entry.Pose == "" {
			continue
		}
		embedding, err := r.embedder.Embed(ctx, entry.EmbeddingText())
		if err != nil {
			return fmt.Errorf("embedding entry %q: %w", entry.Pose, err)
		}
		docs = append(docs, vector.Document{ID: entry.Pose, Pose: entry.Pose, Embedding: embedding})
	}
	if len(docs) == 0 {
		return nil
	}

	if err := r.vectors.Add(ctx, docs); err != nil {
		return fmt.Errorf("indexing %d entries: %w", len(docs), err)
	}
	r.logger.Info("indexed knowledge entries", "count", len(docs))
	return nil
}
