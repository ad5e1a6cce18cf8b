package middlewares

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/media", "/api/media"},
		{"/api/geo", "/api/geo"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/api/upload/photo", "/api/upload/{category}"},
		{"/api/upload/document", "/api/upload/{category}"},
		{"/swagger/index.html", "/swagger/*"},
		{"/photos/original/photo_123_abc.jpg", "/photos/*"},
		{"/videos/original/v.mp4", "/videos/*"},
		{"/audio/original/a.mp3", "/audio/*"},
		{"/documents/original/d.pdf", "/documents/*"},
		// scanner noise collapses into one bucket
		{"/wp-admin/setup.php", "/other"},
		{"/.env", "/other"},
		{"/api/unknown", "/other"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.path), tt.path)
	}
}
