package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/terteryan-memorial/backend/internal/models"
	"go.uber.org/zap"
)

// catalogRepository persists the whole media document as one JSON file.
// The document is small enough to hold in memory, so every operation is a
// full read-modify-write. A mutex serializes writers; without it two
// overlapping mutations would silently lose one of the updates.
type catalogRepository struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewCatalogRepository creates a repository backed by the JSON file at path.
// The file is created implicitly on the first successful write.
func NewCatalogRepository(path string, logger *zap.Logger) *catalogRepository {
	return &catalogRepository{
		path:   path,
		logger: logger,
	}
}

// Read returns the current catalog. A missing or unreadable file degrades
// to the built-in default document rather than failing.
func (r *catalogRepository) Read(ctx context.Context) (*models.Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// read loads the catalog without locking; callers hold r.mu.
func (r *catalogRepository) read() (*models.Catalog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Warn("failed to read catalog file, using defaults",
				zap.String("path", r.path),
				zap.Error(err),
			)
		}
		return models.DefaultCatalog(), nil
	}

	catalog := &models.Catalog{}
	if err := json.Unmarshal(data, catalog); err != nil {
		r.logger.Warn("failed to parse catalog file, using defaults",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return models.DefaultCatalog(), nil
	}

	return catalog, nil
}

// write persists the whole catalog; callers hold r.mu.
func (r *catalogRepository) write(catalog *models.Catalog) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}

	return nil
}

// Update runs fn on the current catalog and persists the result. The whole
// read-modify-write happens under the repository lock, so concurrent
// mutations are applied one after another instead of overwriting each other.
// If fn returns an error, nothing is written.
func (r *catalogRepository) Update(ctx context.Context, fn func(*models.Catalog) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	catalog, err := r.read()
	if err != nil {
		return err
	}

	if err := fn(catalog); err != nil {
		return err
	}

	return r.write(catalog)
}
