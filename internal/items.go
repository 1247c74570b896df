// Package internal has application-layer helpers for the courier CLI:
// item loading, production collaborators, and report output.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NSBTW/courier/schema"
)

// LoadItems reads every regular *.json file in dir as one Item, in
// lexicographic name order. Directory order is the batch input order, which
// the pipeline and reports preserve.
func LoadItems(dir string) ([]schema.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read items folder %s: %w", dir, err)
	}

	var items []schema.Item
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("cannot read item %s: %w", entry.Name(), err)
		}
		items = append(items, schema.Item{Name: entry.Name(), Content: content})
	}
	return items, nil
}
