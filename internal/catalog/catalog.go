// Package catalog reads and writes the {id: entry} mapping the
// enrichment passes operate on.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/CommanderStorm/navigatum-data/internal/model"
)

// Load reads a catalog mapping from a JSON file. The mapping key is the
// authoritative entry id and is copied onto each entry.
func Load(path string) (map[string]*model.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var data map[string]*model.Entry
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	for id, entry := range data {
		entry.ID = id
	}
	return data, nil
}

// Save writes the catalog mapping as indented JSON.
func Save(path string, data map[string]*model.Entry) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// SortedIDs returns the entry ids in lexical order, for deterministic
// iteration where output order matters.
func SortedIDs(data map[string]*model.Entry) []string {
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
