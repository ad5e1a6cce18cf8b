package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// StoredFile describes one persisted upload
type StoredFile struct {
	ID           string         `json:"id"`
	Filename     string         `json:"filename"`
	OriginalName string         `json:"originalName"`
	URL          string         `json:"url"`
	Size         int64          `json:"size"`
	Type         string         `json:"type"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// localStorage persists uploads on the local filesystem under
// {basePath}/{categoryDirectory}/original/
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// GenerateFileName builds {category}_{unixMillis}_{uuid}{extension}.
// Practical uniqueness without a lookup; the UUID component doubles as the
// file's id. Returns the filename and the id.
func GenerateFileName(category Category, extension string) (string, string) {
	id := uuid.New().String()
	if extension != "" && extension[0] != '.' {
		extension = "." + extension
	}
	return fmt.Sprintf("%s_%d_%s%s", category, time.Now().UnixMilli(), id, extension), id
}

// Save writes the file bytes under a generated unique name and returns the
// descriptor. The target directory is created with parents when missing.
// The write goes directly to the final path; a crash mid-write can leave a
// truncated file.
func (s *localStorage) Save(category Category, originalName, contentType string, reader io.Reader) (*StoredFile, error) {
	cfg, ok := ConfigFor(category)
	if !ok {
		return nil, fmt.Errorf("unknown upload category %q", category)
	}

	filename, id := GenerateFileName(category, filepath.Ext(originalName))

	dir := filepath.Join(s.basePath, cfg.Directory, "original")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	// Count bytes while copying
	sizeWriter := NewSizeWriter()
	if _, err := io.Copy(file, io.TeeReader(reader, sizeWriter)); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &StoredFile{
		ID:           id,
		Filename:     filename,
		OriginalName: originalName,
		URL:          fmt.Sprintf("/%s/original/%s", cfg.Directory, filename),
		Size:         sizeWriter.Size(),
		Type:         contentType,
	}, nil
}

// Open opens a stored file for reading
func (s *localStorage) Open(category Category, filename string) (io.ReadCloser, error) {
	cfg, ok := ConfigFor(category)
	if !ok {
		return nil, fmt.Errorf("unknown upload category %q", category)
	}
	return os.Open(filepath.Join(s.basePath, cfg.Directory, "original", filename))
}
