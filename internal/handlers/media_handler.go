package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/terteryan-memorial/backend/internal/models"
	"github.com/terteryan-memorial/backend/internal/services"
	"go.uber.org/zap"
)

// CatalogService defines the interface for catalog operations
type CatalogService interface {
	// GetCatalog returns the whole locale-keyed media document.
	GetCatalog(ctx context.Context) (*models.Catalog, error)
	// GetCollection returns one collection container for (type, locale),
	// or nil when the pair is unknown.
	GetCollection(ctx context.Context, typ, locale string) (any, error)
	// AppendItem appends a decoded item, assigning an id when absent, and
	// returns the stored item.
	AppendItem(ctx context.Context, typ, locale string, raw json.RawMessage) (models.Record, error)
	// UpdateItem replaces the record matching the item's id wholesale.
	UpdateItem(ctx context.Context, typ, locale string, raw json.RawMessage) (models.Record, error)
	// DeleteItem removes the record with the given id.
	DeleteItem(ctx context.Context, typ, locale, id string) error
}

// MediaHandler handles the media catalog HTTP surface
type MediaHandler struct {
	BaseHandler
	catalogService CatalogService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(catalogService CatalogService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		catalogService: catalogService,
	}
}

// RegisterRoutes registers all media handler routes
func (h *MediaHandler) RegisterRoutes(r chi.Router) {
	r.Route("/media", func(r chi.Router) {
		r.Get("/", h.GetMedia)
		r.Post("/", h.AddItem)
		r.Put("/", h.UpdateItem)
		r.Delete("/", h.DeleteItem)
	})
}

// mediaItemRequest is the body of POST and PUT /media
type mediaItemRequest struct {
	Type   string          `json:"type"`
	Locale string          `json:"locale"`
	Item   json.RawMessage `json:"item"`
}

// GetMedia handles GET /media
// @Summary Get media catalog or one collection
// @Description Without type, returns the whole locale-keyed document. With type, returns that collection's container including its UI labels.
// @Tags media
// @Produce json
// @Param type query string false "Collection type" Enums(music, video, photos, publications)
// @Param locale query string false "Locale" Enums(ru, en) default(ru)
// @Success 200 {object} handlers.APIResponse
// @Failure 500 {object} handlers.APIResponse
// @Router /media [get]
func (h *MediaHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("type")
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = models.LocaleRU
	}

	if mediaType != "" {
		collection, err := h.catalogService.GetCollection(r.Context(), mediaType, locale)
		if err != nil {
			h.Logger.Error("failed to get collection", zap.Error(err), zap.String("type", mediaType))
			h.RespondError(w, http.StatusInternalServerError, "Failed to retrieve media data")
			return
		}
		h.RespondData(w, http.StatusOK, collection)
		return
	}

	catalog, err := h.catalogService.GetCatalog(r.Context())
	if err != nil {
		h.Logger.Error("failed to get catalog", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "Failed to retrieve media data")
		return
	}

	h.RespondData(w, http.StatusOK, catalog)
}

// AddItem handles POST /media
// @Summary Append a media item
// @Description Appends the item to the (locale, type) collection, assigning item.id when absent.
// @Tags media
// @Accept json
// @Produce json
// @Param request body handlers.mediaItemRequest true "Item to append"
// @Success 200 {object} handlers.APIResponse
// @Failure 400 {object} handlers.APIResponse
// @Failure 500 {object} handlers.APIResponse
// @Router /media [post]
func (h *MediaHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req mediaItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" || req.Locale == "" || len(req.Item) == 0 {
		h.RespondError(w, http.StatusBadRequest, "Missing required parameters: type, locale, item")
		return
	}

	item, err := h.catalogService.AppendItem(r.Context(), req.Type, req.Locale, req.Item)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidTypeOrLocale):
			h.RespondError(w, http.StatusBadRequest, "Invalid type or locale")
		case errors.Is(err, services.ErrInvalidItem):
			h.RespondError(w, http.StatusBadRequest, "Invalid item format")
		default:
			h.Logger.Error("failed to add media item", zap.Error(err), zap.String("type", req.Type))
			h.RespondError(w, http.StatusInternalServerError, "Failed to add media item")
		}
		return
	}

	h.RespondData(w, http.StatusOK, item)
}

// UpdateItem handles PUT /media
// @Summary Replace a media item
// @Description Replaces the record matching item.id wholesale.
// @Tags media
// @Accept json
// @Produce json
// @Param request body handlers.mediaItemRequest true "Item to update (id required)"
// @Success 200 {object} handlers.APIResponse
// @Failure 400 {object} handlers.APIResponse
// @Failure 404 {object} handlers.APIResponse
// @Failure 500 {object} handlers.APIResponse
// @Router /media [put]
func (h *MediaHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req mediaItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" || req.Locale == "" || len(req.Item) == 0 || itemID(req.Item) == "" {
		h.RespondError(w, http.StatusBadRequest, "Missing required parameters: type, locale, item with id")
		return
	}

	item, err := h.catalogService.UpdateItem(r.Context(), req.Type, req.Locale, req.Item)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			h.RespondError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, services.ErrInvalidTypeOrLocale):
			h.RespondError(w, http.StatusBadRequest, "Invalid type or locale")
		case errors.Is(err, services.ErrInvalidItem):
			h.RespondError(w, http.StatusBadRequest, "Invalid item format")
		default:
			h.Logger.Error("failed to update media item", zap.Error(err), zap.String("type", req.Type))
			h.RespondError(w, http.StatusInternalServerError, "Failed to update media item")
		}
		return
	}

	h.RespondData(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /media
// @Summary Remove a media item
// @Tags media
// @Produce json
// @Param type query string true "Collection type"
// @Param locale query string true "Locale"
// @Param id query string true "Item id"
// @Success 200 {object} handlers.APIResponse
// @Failure 400 {object} handlers.APIResponse
// @Failure 404 {object} handlers.APIResponse
// @Failure 500 {object} handlers.APIResponse
// @Router /media [delete]
func (h *MediaHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	mediaType := r.URL.Query().Get("type")
	locale := r.URL.Query().Get("locale")
	id := r.URL.Query().Get("id")

	if mediaType == "" || locale == "" || id == "" {
		h.RespondError(w, http.StatusBadRequest, "Missing required parameters: type, locale, id")
		return
	}

	if err := h.catalogService.DeleteItem(r.Context(), mediaType, locale, id); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			h.RespondError(w, http.StatusNotFound, "Item not found")
		case errors.Is(err, services.ErrInvalidTypeOrLocale):
			h.RespondError(w, http.StatusBadRequest, "Invalid type or locale")
		default:
			h.Logger.Error("failed to delete media item", zap.Error(err), zap.String("id", id))
			h.RespondError(w, http.StatusInternalServerError, "Failed to delete media item")
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, APIResponse{Success: true, Message: "Item deleted successfully"})
}

// itemID peeks at the raw item's id field
func itemID(raw json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}
