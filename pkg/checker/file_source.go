// Package checker loads reliability check data for the chart engine.
// All data stays in memory; there is no persistence layer.
package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// FileSource reads a snapshot from a JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the given file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the snapshot.
func (s *FileSource) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check data '%s': %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse check data '%s': %w", s.path, err)
	}

	if len(snap.Entities) == 0 {
		return nil, ErrNoEntities
	}

	for _, e := range snap.Entities {
		if len(snap.Checks[e.Name]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoChecks, e.Name)
		}
	}

	return &snap, nil
}
