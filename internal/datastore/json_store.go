package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/huangsam/flowstate/internal/contract"
	"github.com/huangsam/flowstate/schema"
)

// JSONStore persists a single dataset snapshot as an indented JSON file.
// Saving replaces the previous snapshot in place.
type JSONStore struct {
	path string
}

var _ DatasetStore = &JSONStore{} // Compile-time check

// NewJSONStore creates a JSON file store at the given path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads and validates the snapshot file. Failures map onto the query
// error taxonomy so callers can surface them without translation.
func (s *JSONStore) Load() (*schema.Dataset, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, contract.NewQueryError(
				contract.ErrDataNotFound,
				"Correlation data not found. Run the correlation pipeline first.",
				fmt.Sprintf("Run 'flowstate correlate' to produce %s", s.path),
			)
		}
		return nil, contract.NewQueryError(
			contract.ErrLoad,
			"Error loading correlation data. Please check file permissions and try again.",
			err.Error(),
		)
	}
	return decodeDataset(raw)
}

// Save writes the dataset, creating parent directories as needed.
func (s *JSONStore) Save(dataset *schema.Dataset) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create dataset directory %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset to %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *JSONStore) Close() error {
	return nil
}

// decodeDataset parses raw snapshot JSON and enforces the required shape.
func decodeDataset(raw []byte) (*schema.Dataset, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, corruptedError()
	}
	for _, key := range []string{"timeline", "totals", "correlations", "insights"} {
		if _, ok := sections[key]; !ok {
			return nil, missingFieldError(key)
		}
	}

	// Entries must carry every count field, not just parse; a snapshot
	// written by an older pipeline version is rejected here rather than
	// silently defaulting counts to zero.
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(sections["timeline"], &entries); err != nil {
		return nil, corruptedError()
	}
	if len(entries) > 0 {
		for _, field := range []string{"date", "music_count", "video_count", "commit_count"} {
			if _, ok := entries[0][field]; !ok {
				return nil, missingFieldError("timeline entry " + field)
			}
		}
	}

	var dataset schema.Dataset
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return nil, corruptedError()
	}
	return &dataset, nil
}

func corruptedError() *contract.QueryError {
	return contract.NewQueryError(
		contract.ErrJSONParse,
		"Corrupted correlation data. Re-run the correlation pipeline.",
		"Run 'flowstate correlate' to rebuild the dataset snapshot",
	)
}

func missingFieldError(field string) *contract.QueryError {
	return contract.NewQueryError(
		contract.ErrMissingRequiredField,
		fmt.Sprintf("Missing required field: %s", field),
		"Re-run the correlation pipeline to produce a complete dataset snapshot",
	)
}
