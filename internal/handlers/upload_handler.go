package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/terteryan-memorial/backend/internal/storage"
	"go.uber.org/zap"
)

// multipartMemoryLimit is the in-memory threshold for multipart parsing;
// larger files spill to temp files
const multipartMemoryLimit = 32 << 20

// UploadService defines the interface for the upload pipeline
type UploadService interface {
	// ValidateMetadata checks the category's required metadata fields
	// before any file write happens.
	ValidateMetadata(category storage.Category, metadata map[string]any) error
	// Upload validates the declared type and size, persists the bytes and
	// returns the descriptor merged with the caller's metadata.
	Upload(ctx context.Context, category storage.Category, originalName, contentType string, size int64, reader io.Reader, metadata map[string]any) (*storage.StoredFile, error)
}

// UploadHandler handles the per-category upload routes
type UploadHandler struct {
	BaseHandler
	uploadService UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService UploadService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		uploadService: uploadService,
	}
}

// RegisterRoutes registers upload routes. Preflight OPTIONS requests are
// answered by the CORS middleware before reaching the router.
func (h *UploadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/upload/{category}", h.UploadFile)
}

// UploadFile handles POST /upload/{category}
// @Summary Upload one media file with metadata
// @Description Validates required metadata and the declared MIME type and size, then stores the file under the category's directory. No derived assets (thumbnails, durations) are generated.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Upload category" Enums(photo, video, audio, document)
// @Param file formData file true "File to upload"
// @Param metadata formData string false "Metadata JSON string"
// @Success 200 {object} handlers.APIResponse
// @Failure 400 {object} handlers.APIResponse
// @Failure 500 {object} handlers.APIResponse
// @Router /upload/{category} [post]
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	categoryStr := chi.URLParam(r, "category")
	if !storage.IsValidCategory(categoryStr) {
		h.RespondError(w, http.StatusBadRequest, "Invalid upload category")
		return
	}
	category := storage.Category(categoryStr)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.Logger.Warn("failed to parse multipart form", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "No file provided")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		h.RespondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	metadata := parseMetadataField(r.FormValue("metadata"), h.Logger)

	// Required-metadata check runs before any byte reaches disk, so a
	// rejected upload cannot leave an orphan file
	if err := h.uploadService.ValidateMetadata(category, metadata); err != nil {
		h.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	stored, err := h.uploadService.Upload(r.Context(), category, fileHeader.Filename, contentType, fileHeader.Size, file, metadata)
	if err != nil {
		var validationErr *storage.ValidationError
		if errors.As(err, &validationErr) {
			h.RespondError(w, http.StatusBadRequest, validationErr.Reason)
			return
		}
		h.Logger.Error("failed to upload file",
			zap.Error(err),
			zap.String("category", categoryStr),
			zap.String("filename", fileHeader.Filename),
		)
		h.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.RespondData(w, http.StatusOK, stored)
}

// parseMetadataField decodes the multipart metadata field. A malformed
// value is logged and treated as empty; the required-field check then
// produces the client-facing rejection.
func parseMetadataField(value string, logger *zap.Logger) map[string]any {
	metadata := make(map[string]any)
	if value == "" {
		return metadata
	}
	if err := json.Unmarshal([]byte(value), &metadata); err != nil {
		logger.Warn("failed to parse metadata field", zap.Error(err))
		return make(map[string]any)
	}
	return metadata
}
