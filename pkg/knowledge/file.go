package knowledge

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads knowledge entries from a JSON file. The file may be a bare
// array or an object with an "entries" array. A missing file yields nil
// entries and no error.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading knowledge file: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}

	var envelope struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing knowledge file: %w", err)
	}
	return envelope.Entries, nil
}

// Save writes entries to path as an indented JSON array, creating parent
// directories as needed. With merge true and a readable existing file,
// entries overwrite or extend the file's set by pose name. Returns the
// number of entries written.
func Save(entries []Entry, path string, merge bool) (int, error) {
	if merge {
		existing, err := Load(path)
		if err == nil && len(existing) > 0 {
			entries = Merge(existing, entries)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating knowledge dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encoding knowledge: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing knowledge file: %w", err)
	}
	return len(entries), nil
}

// Merge overlays entries onto base by pose name. Base order is kept,
// overlaid poses replace in place, and new poses append in overlay
// order. Entries without a pose name are dropped.
func Merge(base, overlay []Entry) []Entry {
	index := make(map[string]int, len(base))
	out := make([]Entry, 0, len(base)+len(overlay))

	for _, e := range base {
		if e.Pose == "" {
			continue
		}
		index[e.Pose] = len(out)
		out = append(out, e)
	}
	for _, e := range overlay {
		if e.Pose == "" {
			continue
		}
		if i, ok := index[e.Pose]; ok {
			out[i] = e
			continue
		}
		index[e.Pose] = len(out)
		out = append(out, e)
	}
	return out
}
