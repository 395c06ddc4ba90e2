// Package datastore persists and loads correlation dataset snapshots.
package datastore

import (
	"fmt"

	"github.com/huangsam/flowstate/schema"
)

// DatasetStore reads and writes immutable dataset snapshots. Load always
// returns the most recent snapshot; Save appends a new one.
type DatasetStore interface {
	Load() (*schema.Dataset, error)
	Save(dataset *schema.Dataset) error
	Close() error
}

// NewDatasetStore creates a DatasetStore for the given backend. The JSON
// backend persists a single snapshot file at path; the SQL backends keep a
// snapshot history addressed by connStr.
func NewDatasetStore(backend schema.DatasetBackend, path, connStr string) (DatasetStore, error) {
	switch backend {
	case schema.JSONBackend:
		return NewJSONStore(path), nil
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return NewSQLStore(backend, connStr)
	default:
		return nil, fmt.Errorf("unsupported dataset backend: %s. Must be json, sqlite, mysql, or postgresql", backend)
	}
}
