package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// GeoClient defines the interface for country detection
type GeoClient interface {
	// CountryFromRequest resolves the caller's ISO2 country code; it never
	// fails, degrading to a default instead.
	CountryFromRequest(r *http.Request) string
}

// GeoHandler serves the best-effort country lookup used for locale detection
type GeoHandler struct {
	BaseHandler
	client GeoClient
}

// NewGeoHandler creates a new geo handler
func NewGeoHandler(client GeoClient, logger *zap.Logger) *GeoHandler {
	return &GeoHandler{
		BaseHandler: BaseHandler{Logger: logger},
		client:      client,
	}
}

// RegisterRoutes registers the geo route
func (h *GeoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/geo", h.GetCountry)
}

// GetCountry handles GET /geo
// @Summary Detect the caller's country
// @Description Best-effort ISO2 country lookup for locale detection. Always answers 200 with a country, falling back to US.
// @Tags geo
// @Produce json
// @Success 200 {object} map[string]string
// @Router /geo [get]
func (h *GeoHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country := h.client.CountryFromRequest(r)
	h.RespondJSON(w, http.StatusOK, map[string]string{"country": country})
}
