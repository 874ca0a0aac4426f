// Package knowledge holds the structured yoga knowledge base used for
// retrieval-augmented coaching: alignment cues, contraindications,
// benefits, breathing guidance, and modifications per pose or topic.
//
// Builtin entries are compiled in. When a knowledge file is configured,
// its entries are merged over the builtins by pose name (file wins), so
// ingested books and notes extend or correct the defaults.
package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/halfmoonlabs/vinyasa/pkg/logger"
)

// Entry is one unit of yoga knowledge. Pose is the catalog pose name for
// asana entries; ingested philosophy uses it as a topic id instead.
type Entry struct {
	Pose              string   `json:"pose"`
	Alignment         []string `json:"alignment"`
	Contraindications []string `json:"contraindications"`
	Benefits          []string `json:"benefits"`
	Breathing         string   `json:"breathing"`
	Modifications     string   `json:"modifications"`
}

// EmbeddingText returns the text representation embedded for semantic
// retrieval.
func (e Entry) EmbeddingText() string {
	parts := []string{strings.ReplaceAll(e.Pose, "_", " ")}
	if len(e.Benefits) > 0 {
		parts = append(parts, "Benefits: "+strings.Join(e.Benefits, "; "))
	}
	if len(e.Alignment) > 0 {
		parts = append(parts, "Alignment: "+strings.Join(e.Alignment, "; "))
	}
	if e.Breathing != "" {
		parts = append(parts, "Breathing: "+e.Breathing)
	}
	if e.Modifications != "" {
		parts = append(parts, "Modifications: "+e.Modifications)
	}
	return strings.Join(parts, "\n")
}

// Markdown renders the entry as a compact markdown block for chat
// context. Long lists are capped so a handful of entries stays within a
// reasonable prompt size.
func (e Entry) Markdown() string {
	parts := []string{"**" + e.Pose + "**"}
	if len(e.Benefits) > 0 {
		parts = append(parts, "Benefits: "+strings.Join(capped(e.Benefits, 3), "; "))
	}
	if len(e.Alignment) > 0 {
		parts = append(parts, "Alignment: "+strings.Join(capped(e.Alignment, 3), "; "))
	}
	if e.Breathing != "" {
		parts = append(parts, "Breathing: "+e.Breathing)
	}
	if len(e.Contraindications) > 0 {
		parts = append(parts, "Avoid if: "+strings.Join(capped(e.Contraindications, 2), "; "))
	}
	return strings.Join(parts, "\n")
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func (e Entry) searchText() string {
	parts := []string{
		strings.ReplaceAll(e.Pose, "_", " "),
		strings.Join(e.Benefits, " "),
		strings.Join(e.Alignment, " "),
		e.Breathing,
		e.Modifications,
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Config configures a Base.
type Config struct {
	// Path is the knowledge JSON file merged over the builtin entries.
	// Empty means builtins only.
	Path string

	Logger *slog.Logger
}

// Base is the in-memory knowledge base. It is safe for concurrent use;
// Reload and Watch swap the entry set atomically under readers.
type Base struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	entries []Entry
}

// New builds a Base from the builtin entries merged with cfg.Path when
// the file exists. A missing file is not an error; an unreadable or
// malformed one logs a warning and leaves the builtins in place.
func New(cfg Config) *Base {
	b := &Base{path: cfg.Path, logger: cfg.Logger}
	if b.logger == nil {
		b.logger = logger.Nop()
	}

	b.entries = builtinEntries()
	if b.path != "" {
		if err := b.Reload(); err != nil {
			b.logger.Warn("loading knowledge file, keeping builtin entries",
				"path", b.path, "error", err)
		}
	}
	return b
}

// Path returns the knowledge file path, or "" when running builtins only.
func (b *Base) Path() string { return b.path }

// Reload re-reads the knowledge file and swaps in builtins merged with
// its entries. The previous entry set stays in place on error.
func (b *Base) Reload() error {
	fromFile, err := Load(b.path)
	if err != nil {
		return err
	}
	merged := Merge(builtinEntries(), fromFile)

	b.mu.Lock()
	b.entries = merged
	b.mu.Unlock()
	return nil
}

// ByPose returns the entry for the named pose or topic.
func (b *Base) ByPose(name string) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, e := range b.entries {
		if e.Pose == name {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns a copy of every entry.
func (b *Base) All() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries.
func (b *Base) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Search scores entries by query-word hits across the pose name,
// benefits, alignment, breathing, and modifications text and returns up
// to limit entries, best first. Words of one character are ignored; an
// empty or all-short query returns nil.
func (b *Base) Search(query string, limit int) []Entry {
	words := queryWords(query)
	if len(words) == 0 {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	type match struct {
		entry Entry
		hits  int
	}
	var matches []match
	for _, e := range b.entries {
		text := e.searchText()
		hits := 0
		for _, w := range words {
			if strings.Contains(text, w) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, match{entry: e, hits: hits})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = m.entry
	}
	return out
}

func queryWords(query string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		if len(f) <= 1 || seen[f] {
			continue
		}
		seen[f] = true
		words = append(words, f)
	}
	return words
}

// Watch blocks, reloading the knowledge base whenever its file is
// written or replaced. It returns when ctx is canceled or the watcher
// fails. With no file configured it just waits for cancellation.
func (b *Base) Watch(ctx context.Context) error {
	if b.path == "" {
		<-ctx.Done()
		return ctx.Err()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating knowledge watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors and atomic
	// writers replace the file, which silently drops a file watch.
	if err := watcher.Add(filepath.Dir(b.path)); err != nil {
		return fmt.Errorf("watching knowledge dir: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-watcher.Events:
			if filepath.Clean(event.Name) != filepath.Clean(b.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := b.Reload(); err != nil {
				b.logger.Warn("reloading knowledge file", "path", b.path, "error", err)
				continue
			}
			b.logger.Info("knowledge file reloaded", "path", b.path, "entries", b.Len())
		case err := <-watcher.Errors:
			return fmt.Errorf("knowledge watcher error: %w", err)
		}
	}
}
