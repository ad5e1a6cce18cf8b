package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/terteryan-memorial/backend/internal/storage"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes the file bytes under a generated unique name inside the
	// category's directory and returns the descriptor.
	Save(category storage.Category, originalName, contentType string, reader io.Reader) (*storage.StoredFile, error)
}

// requiredMetadata lists the metadata fields each category must carry.
// The check runs at the route layer before any file write, so a rejected
// upload never leaves an orphan file.
var requiredMetadata = map[storage.Category][]string{
	storage.CategoryPhoto:    {"title", "description", "year"},
	storage.CategoryVideo:    {"title", "description", "year"},
	storage.CategoryAudio:    {"title", "composer", "year"},
	storage.CategoryDocument: {"title", "author", "type", "year", "language"},
}

// UploadService composes the file validator and the file store into the
// per-category upload pipeline. Derived assets (thumbnails, waveforms,
// durations, previews) are not generated here; those fields stay empty
// until a separate process fills them.
type UploadService struct {
	storage FileStorage
}

// NewUploadService creates a new upload service
func NewUploadService(fileStorage FileStorage) *UploadService {
	return &UploadService{storage: fileStorage}
}

// ValidateMetadata checks the category's required metadata fields.
// A missing, empty or zero value counts as absent.
func (s *UploadService) ValidateMetadata(category storage.Category, metadata map[string]any) error {
	required, ok := requiredMetadata[category]
	if !ok {
		return &storage.ValidationError{Reason: fmt.Sprintf("Unknown upload category %s", category)}
	}

	for _, field := range required {
		if !metadataFieldPresent(metadata, field) {
			return &storage.ValidationError{
				Reason: fmt.Sprintf("Missing required metadata: %s", strings.Join(required, ", ")),
			}
		}
	}
	return nil
}

// Upload validates the declared type and size, persists the bytes and
// returns the descriptor merged with the caller's metadata. Validation
// failures carry *storage.ValidationError; store failures are internal.
func (s *UploadService) Upload(ctx context.Context, category storage.Category, originalName, contentType string, size int64, reader io.Reader, metadata map[string]any) (*storage.StoredFile, error) {
	if err := storage.ValidateFile(category, contentType, size); err != nil {
		return nil, err
	}

	stored, err := s.storage.Save(category, originalName, contentType, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	stored.Metadata = metadata
	return stored, nil
}

// metadataFieldPresent mirrors the admin UI's notion of a filled-in field:
// nil, empty string and numeric zero are all treated as missing
func metadataFieldPresent(metadata map[string]any, field string) bool {
	value, ok := metadata[field]
	if !ok || value == nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}
