package storage

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFileName(t *testing.T) {
	pattern := regexp.MustCompile(`^photo_\d+_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.jpg$`)

	filename, id := GenerateFileName(CategoryPhoto, ".jpg")
	assert.Regexp(t, pattern, filename)
	assert.Contains(t, filename, id)

	// extension without leading dot gets one
	filename, _ = GenerateFileName(CategoryPhoto, "jpg")
	assert.Regexp(t, pattern, filename)

	a, _ := GenerateFileName(CategoryAudio, ".mp3")
	b, _ := GenerateFileName(CategoryAudio, ".mp3")
	assert.NotEqual(t, a, b)
}

func TestLocalStorage_Save(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStorage(base)

	content := "front cover scan bytes"
	stored, err := store.Save(CategoryPhoto, "cover.jpg", "image/jpeg", strings.NewReader(content))
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.True(t, strings.HasPrefix(stored.Filename, "photo_"), stored.Filename)
	assert.True(t, strings.HasSuffix(stored.Filename, ".jpg"), stored.Filename)
	assert.Equal(t, "cover.jpg", stored.OriginalName)
	assert.Equal(t, "/photos/original/"+stored.Filename, stored.URL)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.Equal(t, "image/jpeg", stored.Type)

	written, err := os.ReadFile(filepath.Join(base, "photos", "original", stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, content, string(written))
}

func TestLocalStorage_Save_UnknownCategory(t *testing.T) {
	store := NewLocalStorage(t.TempDir())

	_, err := store.Save(Category("archive"), "a.zip", "application/zip", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestLocalStorage_Open(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStorage(base)

	stored, err := store.Save(CategoryDocument, "score.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	rc, err := store.Open(CategoryDocument, stored.Filename)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestSizeWriter(t *testing.T) {
	w := NewSizeWriter()
	n, err := w.Write([]byte("12345"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = w.Write([]byte("678"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), w.Size())
}
