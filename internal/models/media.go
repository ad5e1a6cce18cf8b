package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Locale codes supported by the catalog
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// CollectionType identifies one of the four media collections
type CollectionType string

const (
	TypeMusic        CollectionType = "music"
	TypeVideo        CollectionType = "video"
	TypePhotos       CollectionType = "photos"
	TypePublications CollectionType = "publications"
)

// IsValidCollectionType checks if the collection type is one of the known four
func IsValidCollectionType(t string) bool {
	switch CollectionType(t) {
	case TypeMusic, TypeVideo, TypePhotos, TypePublications:
		return true
	default:
		return false
	}
}

// Year tolerates the two encodings present in legacy catalog data:
// most records store the year as a string ("1985"), a few as a bare number.
// The numeric form is preserved on re-encode.
type Year struct {
	value   string
	numeric bool
}

// NewYear creates a string-encoded Year
func NewYear(s string) Year {
	return Year{value: s}
}

// String returns the year as text regardless of encoding
func (y Year) String() string { return y.value }

// IsZero reports whether the year is unset (drives json omitzero)
func (y Year) IsZero() bool { return y.value == "" }

// MarshalJSON encodes the year in its original form
func (y Year) MarshalJSON() ([]byte, error) {
	if y.numeric {
		return []byte(y.value), nil
	}
	return json.Marshal(y.value)
}

// UnmarshalJSON accepts both "1985" and 1985
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = Year{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year{value: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year must be a string or number: %w", err)
	}
	*y = Year{value: n.String(), numeric: true}
	return nil
}

// Record is implemented by every catalog item type
type Record interface {
	RecordID() string
	SetRecordID(id string)
}

// AudioTrack is one entry of a music collection
type AudioTrack struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn,omitempty"`
	Year          Year   `json:"year,omitzero"`
	Composer      string `json:"composer"`
	ComposerEn    string `json:"composerEn,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Src           string `json:"src"`
	Description   string `json:"description,omitempty"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Album         string `json:"album,omitempty"`
	Genre         string `json:"genre,omitempty"`
}

func (t *AudioTrack) RecordID() string      { return t.ID }
func (t *AudioTrack) SetRecordID(id string) { t.ID = id }

// VideoItem is one entry of a video collection
type VideoItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn,omitempty"`
	Year          Year   `json:"year,omitzero"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Duration      string `json:"duration"`
	Thumbnail     string `json:"thumbnail"`
	VideoURL      string `json:"videoUrl"`
	Location      string `json:"location,omitempty"`
	Performers    string `json:"performers,omitempty"`
}

func (v *VideoItem) RecordID() string      { return v.ID }
func (v *VideoItem) SetRecordID(id string) { v.ID = id }

// PhotoItem is one entry of a photo collection.
// ThumbnailURL/MediumURL/LargeURL are reserved for a resize step that the
// upload pipeline does not run; they stay empty unless set by hand.
type PhotoItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn,omitempty"`
	Year          Year   `json:"year,omitzero"`
	Src           string `json:"src"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Location      string `json:"location,omitempty"`
	Photographer  string `json:"photographer,omitempty"`
	Event         string `json:"event,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	MediumURL     string `json:"mediumUrl,omitempty"`
	LargeURL      string `json:"largeUrl,omitempty"`
}

func (p *PhotoItem) RecordID() string      { return p.ID }
func (p *PhotoItem) SetRecordID(id string) { p.ID = id }

// PublicationItem is one entry of a publications collection
type PublicationItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleEn       string `json:"titleEn,omitempty"`
	Year          Year   `json:"year,omitzero"`
	Description   string `json:"description"`
	DescriptionEn string `json:"descriptionEn,omitempty"`
	Type          string `json:"type"`
	Author        string `json:"author"`
	AuthorEn      string `json:"authorEn,omitempty"`
	Pages         int    `json:"pages"`
	Size          string `json:"size"`
	FileURL       string `json:"fileUrl"`
	Language      string `json:"language"`
	Publisher     string `json:"publisher,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
}

func (p *PublicationItem) RecordID() string      { return p.ID }
func (p *PublicationItem) SetRecordID(id string) { p.ID = id }

// MusicCollection holds audio tracks plus the UI labels persisted with them
type MusicCollection struct {
	Tracks    []*AudioTrack `json:"tracks"`
	ListTitle string        `json:"listTitle,omitempty"`
}

// VideoCollection holds video items plus the UI labels persisted with them
type VideoCollection struct {
	Items      []*VideoItem `json:"items"`
	WatchVideo string       `json:"watchVideo,omitempty"`
	SourceNote string       `json:"sourceNote,omitempty"`
}

// PhotoCollection holds photo items plus the UI labels persisted with them
type PhotoCollection struct {
	Items      []*PhotoItem `json:"items"`
	SourceNote string       `json:"sourceNote,omitempty"`
}

// PublicationCollection holds publication items plus the UI labels persisted
// with them. PagesLabel is the "стр."/"pp." suffix, not a page count.
type PublicationCollection struct {
	Items       []*PublicationItem `json:"items"`
	DownloadPdf string             `json:"downloadPdf,omitempty"`
	PagesLabel  string             `json:"pages,omitempty"`
	SourceNote  string             `json:"sourceNote,omitempty"`
}

// LocaleData is one locale's complete media tree
type LocaleData struct {
	Music        MusicCollection       `json:"music"`
	Video        VideoCollection       `json:"video"`
	Photos       PhotoCollection       `json:"photos"`
	Publications PublicationCollection `json:"publications"`
}

// Collection returns the container for the given type as an
// interface{} suitable for JSON responses, or nil for unknown types
func (l *LocaleData) Collection(t CollectionType) any {
	switch t {
	case TypeMusic:
		return &l.Music
	case TypeVideo:
		return &l.Video
	case TypePhotos:
		return &l.Photos
	case TypePublications:
		return &l.Publications
	default:
		return nil
	}
}

// Catalog is the whole locale-keyed media document.
// The two locale trees are independently mutable; nothing couples record
// ids across locales.
type Catalog struct {
	RU *LocaleData `json:"ru"`
	EN *LocaleData `json:"en"`
}

// Locale returns the tree for a locale code, or nil when unknown
func (c *Catalog) Locale(code string) *LocaleData {
	switch code {
	case LocaleRU:
		return c.RU
	case LocaleEN:
		return c.EN
	default:
		return nil
	}
}
