package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/terteryan-memorial/backend/internal/models"
)

// Catalog mutation errors surfaced to the HTTP layer
var (
	ErrInvalidTypeOrLocale = errors.New("invalid type or locale")
	ErrInvalidItem         = errors.New("invalid item payload")
	ErrItemNotFound        = errors.New("item not found")
)

// CatalogRepository defines the interface for catalog persistence
type CatalogRepository interface {
	// Read returns the current catalog, degrading to the default document
	// when the backing file is missing or unreadable.
	Read(ctx context.Context) (*models.Catalog, error)
	// Update applies fn to the current catalog and persists the result as
	// one serialized read-modify-write.
	Update(ctx context.Context, fn func(*models.Catalog) error) error
}

// CatalogService handles business logic for the media catalog
type CatalogService struct {
	repo CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// GetCatalog returns the whole locale-keyed document
func (s *CatalogService) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	return s.repo.Read(ctx)
}

// GetCollection returns one collection container (items plus its UI labels)
// for the given type and locale. Unknown type or locale yields nil, matching
// the read contract: the caller responds 200 with null data, not an error.
func (s *CatalogService) GetCollection(ctx context.Context, typ, locale string) (any, error) {
	catalog, err := s.repo.Read(ctx)
	if err != nil {
		return nil, err
	}

	localeData := catalog.Locale(locale)
	if localeData == nil {
		return nil, nil
	}

	return localeData.Collection(models.CollectionType(typ)), nil
}

// AppendItem decodes the raw item for its collection type, assigns an id
// when absent and appends it to the (locale, type) collection.
// Returns the stored item.
func (s *CatalogService) AppendItem(ctx context.Context, typ, locale string, raw json.RawMessage) (models.Record, error) {
	item, err := decodeItem(models.CollectionType(typ), raw)
	if err != nil {
		return nil, err
	}

	if item.RecordID() == "" {
		item.SetRecordID(strconv.FormatInt(time.Now().UnixMilli(), 10))
	}

	err = s.repo.Update(ctx, func(catalog *models.Catalog) error {
		localeData := catalog.Locale(locale)
		if localeData == nil {
			return ErrInvalidTypeOrLocale
		}

		switch models.CollectionType(typ) {
		case models.TypeMusic:
			localeData.Music.Tracks = append(localeData.Music.Tracks, item.(*models.AudioTrack))
		case models.TypeVideo:
			localeData.Video.Items = append(localeData.Video.Items, item.(*models.VideoItem))
		case models.TypePhotos:
			localeData.Photos.Items = append(localeData.Photos.Items, item.(*models.PhotoItem))
		case models.TypePublications:
			localeData.Publications.Items = append(localeData.Publications.Items, item.(*models.PublicationItem))
		default:
			return ErrInvalidTypeOrLocale
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem replaces the record matching item.id wholesale.
// Returns ErrItemNotFound when no record with that id exists.
func (s *CatalogService) UpdateItem(ctx context.Context, typ, locale string, raw json.RawMessage) (models.Record, error) {
	item, err := decodeItem(models.CollectionType(typ), raw)
	if err != nil {
		return nil, err
	}

	err = s.repo.Update(ctx, func(catalog *models.Catalog) error {
		localeData := catalog.Locale(locale)
		if localeData == nil {
			return ErrInvalidTypeOrLocale
		}

		var found bool
		switch models.CollectionType(typ) {
		case models.TypeMusic:
			found = replaceByID(localeData.Music.Tracks, item.(*models.AudioTrack))
		case models.TypeVideo:
			found = replaceByID(localeData.Video.Items, item.(*models.VideoItem))
		case models.TypePhotos:
			found = replaceByID(localeData.Photos.Items, item.(*models.PhotoItem))
		case models.TypePublications:
			found = replaceByID(localeData.Publications.Items, item.(*models.PublicationItem))
		default:
			return ErrInvalidTypeOrLocale
		}

		if !found {
			return ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes the record with the given id from the (locale, type)
// collection. Returns ErrItemNotFound when the id does not exist.
func (s *CatalogService) DeleteItem(ctx context.Context, typ, locale, id string) error {
	return s.repo.Update(ctx, func(catalog *models.Catalog) error {
		localeData := catalog.Locale(locale)
		if localeData == nil {
			return ErrInvalidTypeOrLocale
		}

		var found bool
		switch models.CollectionType(typ) {
		case models.TypeMusic:
			localeData.Music.Tracks, found = removeByID(localeData.Music.Tracks, id)
		case models.TypeVideo:
			localeData.Video.Items, found = removeByID(localeData.Video.Items, id)
		case models.TypePhotos:
			localeData.Photos.Items, found = removeByID(localeData.Photos.Items, id)
		case models.TypePublications:
			localeData.Publications.Items, found = removeByID(localeData.Publications.Items, id)
		default:
			return ErrInvalidTypeOrLocale
		}

		if !found {
			return ErrItemNotFound
		}
		return nil
	})
}

// decodeItem unmarshals a raw item into the typed variant for its collection
func decodeItem(typ models.CollectionType, raw json.RawMessage) (models.Record, error) {
	var item models.Record
	switch typ {
	case models.TypeMusic:
		item = &models.AudioTrack{}
	case models.TypeVideo:
		item = &models.VideoItem{}
	case models.TypePhotos:
		item = &models.PhotoItem{}
	case models.TypePublications:
		item = &models.PublicationItem{}
	default:
		return nil, ErrInvalidTypeOrLocale
	}

	// A decode failure means the client sent something that is not an
	// object of the collection's shape, so it surfaces as a client error
	if err := json.Unmarshal(raw, item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	return item, nil
}

// replaceByID swaps the list entry whose id matches item, in place
func replaceByID[T models.Record](list []T, item T) bool {
	for i, existing := range list {
		if existing.RecordID() == item.RecordID() {
			list[i] = item
			return true
		}
	}
	return false
}

// removeByID splices the entry with the given id out of the list
func removeByID[T models.Record](list []T, id string) ([]T, bool) {
	for i, existing := range list {
		if existing.RecordID() == id {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
