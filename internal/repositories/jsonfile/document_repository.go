// Package jsonfile persists application state as human-readable JSON
// files rewritten in full on every mutation. Each repository guards its
// file with a mutex so concurrent requests cannot interleave writes; the
// last completed save wins.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/alazar/finance-backend/internal/models"
)

const documentFile = "data.json"

// DocumentRepository stores the single document in <dataDir>/data.json.
type DocumentRepository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func NewDocumentRepository(dataDir string, logger *slog.Logger) *DocumentRepository {
	return &DocumentRepository{path: filepath.Join(dataDir, documentFile), logger: logger}
}

// Load returns the persisted document, or the default document when the
// file is missing or unparseable. Nil collections are normalized so the
// result is always structurally complete.
func (r *DocumentRepository) Load(ctx context.Context) (models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("Error loading data file", slog.String("error", err.Error()))
		}
		return models.DefaultDocument(), nil
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Error("Error parsing data file", slog.String("error", err.Error()))
		return models.DefaultDocument(), nil
	}
	doc.Normalize()
	return doc, nil
}

// Save rewrites the document file wholesale.
func (r *DocumentRepository) Save(ctx context.Context, doc models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSONFile(r.path, doc)
}

// writeJSONFile marshals v with two-space indentation and replaces the
// file, creating the parent directory on demand.
func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
