package repositories

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terteryan-memorial/backend/internal/models"
	"go.uber.org/zap"
)

// setupTestRepository creates a repository backed by a temp directory
func setupTestRepository(t *testing.T) (*catalogRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mediaData.json")
	return NewCatalogRepository(path, zap.NewNop()), path
}

func TestCatalogRepository_Read_MissingFile(t *testing.T) {
	repo, path := setupTestRepository(t)

	catalog, err := repo.Read(context.Background())
	require.NoError(t, err)

	// Degrades to the default document without creating the file
	assert.NotNil(t, catalog.RU)
	assert.NotNil(t, catalog.EN)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCatalogRepository_Read_CorruptFile(t *testing.T) {
	repo, path := setupTestRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	catalog, err := repo.Read(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, catalog.RU)
	assert.NotEmpty(t, catalog.RU.Music.Tracks)
}

func TestCatalogRepository_Update_CreatesFileAndRoundTrips(t *testing.T) {
	repo, path := setupTestRepository(t)

	err := repo.Update(context.Background(), func(catalog *models.Catalog) error {
		catalog.RU.Music.Tracks = append(catalog.RU.Music.Tracks, &models.AudioTrack{
			ID:       "42",
			Title:    "Восточные эскизы",
			Composer: "М. Б. Тертерян",
			Src:      "/audio/eastern-sketches.mp3",
		})
		return nil
	})
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr, "file should be created on first write")

	catalog, err := repo.Read(context.Background())
	require.NoError(t, err)

	var found *models.AudioTrack
	for _, track := range catalog.RU.Music.Tracks {
		if track.ID == "42" {
			found = track
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Восточные эскизы", found.Title)
}

func TestCatalogRepository_Update_ErrorDoesNotWrite(t *testing.T) {
	repo, path := setupTestRepository(t)

	err := repo.Update(context.Background(), func(catalog *models.Catalog) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing should be written when fn fails")
}

func TestCatalogRepository_Update_SerializesConcurrentWriters(t *testing.T) {
	repo, _ := setupTestRepository(t)

	// Two overlapping appends; without serialization one would be lost
	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := repo.Update(context.Background(), func(catalog *models.Catalog) error {
				catalog.RU.Photos.Items = append(catalog.RU.Photos.Items, &models.PhotoItem{
					ID:  string(rune('a' + n)),
					Src: "/photos/original/x.jpg",
				})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	catalog, err := repo.Read(context.Background())
	require.NoError(t, err)

	baseline := len(models.DefaultCatalog().RU.Photos.Items)
	assert.Len(t, catalog.RU.Photos.Items, baseline+writers)
}
