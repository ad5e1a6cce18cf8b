package storage

import (
	"fmt"
	"slices"
	"strings"
)

// Category identifies an upload category with its own limits and directory
type Category string

const (
	CategoryPhoto    Category = "photo"
	CategoryVideo    Category = "video"
	CategoryAudio    Category = "audio"
	CategoryDocument Category = "document"
)

// IsValidCategory checks if the category is one of the known four
func IsValidCategory(c string) bool {
	switch Category(c) {
	case CategoryPhoto, CategoryVideo, CategoryAudio, CategoryDocument:
		return true
	default:
		return false
	}
}

// CategoryConfig holds the per-category size limit, MIME allow-list and
// storage subdirectory
type CategoryConfig struct {
	MaxSize      int64
	AllowedTypes []string
	Directory    string
}

var uploadConfigs = map[Category]CategoryConfig{
	CategoryPhoto: {
		MaxSize:      20 * 1024 * 1024,
		AllowedTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/avif"},
		Directory:    "photos",
	},
	CategoryVideo: {
		MaxSize:      500 * 1024 * 1024,
		AllowedTypes: []string{"video/mp4", "video/mov", "video/avi", "video/mkv", "video/webm"},
		Directory:    "videos",
	},
	CategoryAudio: {
		MaxSize:      50 * 1024 * 1024,
		AllowedTypes: []string{"audio/mpeg", "audio/mp3", "audio/wav", "audio/flac", "audio/aac"},
		Directory:    "audio",
	},
	CategoryDocument: {
		MaxSize:      100 * 1024 * 1024,
		AllowedTypes: []string{"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		Directory:    "documents",
	},
}

// ConfigFor returns the configuration for a category
func ConfigFor(category Category) (CategoryConfig, bool) {
	cfg, ok := uploadConfigs[category]
	return cfg, ok
}

// MaxUploadSize is the largest per-category limit, used to size the
// request-body cap on the upload routes
func MaxUploadSize() int64 {
	var max int64
	for _, cfg := range uploadConfigs {
		if cfg.MaxSize > max {
			max = cfg.MaxSize
		}
	}
	return max
}

// ValidationError reports a client-caused rejection; it maps to HTTP 400
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// ValidateFile checks the declared MIME type and byte size against the
// category's allow-list and limit. The declared type is trusted as-is; a
// mislabeled file is not caught here (accepted risk, no content sniffing).
func ValidateFile(category Category, contentType string, size int64) error {
	cfg, ok := uploadConfigs[category]
	if !ok {
		return &ValidationError{Reason: fmt.Sprintf("Unknown upload category %s", category)}
	}

	if size > cfg.MaxSize {
		return &ValidationError{
			Reason: fmt.Sprintf("File size exceeds maximum allowed size of %dMB", cfg.MaxSize/(1024*1024)),
		}
	}

	if !slices.Contains(cfg.AllowedTypes, contentType) {
		return &ValidationError{
			Reason: fmt.Sprintf("File type %s is not allowed. Allowed types: %s", contentType, strings.Join(cfg.AllowedTypes, ", ")),
		}
	}

	return nil
}
