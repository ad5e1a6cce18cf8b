package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terteryan-memorial/backend/internal/repositories"
	"github.com/terteryan-memorial/backend/internal/services"
	"go.uber.org/zap"
)

// setupMediaServer wires a real service and file-backed repository behind
// the handler, so the tests exercise the full request path.
func setupMediaServer(t *testing.T) *httptest.Server {
	t.Helper()

	repo := repositories.NewCatalogRepository(filepath.Join(t.TempDir(), "mediaData.json"), zap.NewNop())
	svc := services.NewCatalogService(repo)
	handler := NewMediaHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Route("/api", handler.RegisterRoutes)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestGetMedia_FullCatalog(t *testing.T) {
	srv := setupMediaServer(t)

	resp, err := http.Get(srv.URL + "/api/media")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, data, "ru")
	require.Contains(t, data, "en")

	ru := data["ru"].(map[string]any)
	for _, key := range []string{"music", "video", "photos", "publications"} {
		assert.Contains(t, ru, key)
	}
}

func TestGetMedia_Collection(t *testing.T) {
	srv := setupMediaServer(t)

	resp, err := http.Get(srv.URL + "/api/media?type=publications&locale=ru")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Скачать PDF", data["downloadPdf"])
	assert.Contains(t, data, "items")
}

func TestGetMedia_DefaultsToRussian(t *testing.T) {
	srv := setupMediaServer(t)

	resp, err := http.Get(srv.URL + "/api/media?type=music")
	require.NoError(t, err)

	body := decodeEnvelope(t, resp)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Список произведений", data["listTitle"])
}

func TestGetMedia_UnknownTypeOmitsData(t *testing.T) {
	srv := setupMediaServer(t)

	resp, err := http.Get(srv.URL + "/api/media?type=sculptures&locale=ru")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
}

func TestAddItem_AssignsIDAndPersists(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"title":"Прелюдия №13","composer":"М. Тертерян","duration":"2:10","src":"/audio/p13.mp3"}}`
	resp, err := http.Post(srv.URL+"/api/media", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])

	item := body["data"].(map[string]any)
	id, _ := item["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Прелюдия №13", item["title"])

	// the appended track shows up in a subsequent read
	getResp, err := http.Get(srv.URL + "/api/media?type=music&locale=ru")
	require.NoError(t, err)
	getBody := decodeEnvelope(t, getResp)
	tracks := getBody["data"].(map[string]any)["tracks"].([]any)

	var found bool
	for _, tr := range tracks {
		if tr.(map[string]any)["id"] == id {
			found = true
		}
	}
	assert.True(t, found, "appended item must appear in GET")
}

func TestAddItem_MissingParameters(t *testing.T) {
	srv := setupMediaServer(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"no type", `{"locale":"ru","item":{"title":"x"}}`},
		{"no locale", `{"type":"music","item":{"title":"x"}}`},
		{"no item", `{"type":"music","locale":"ru"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/media", "application/json", strings.NewReader(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeEnvelope(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Missing required parameters: type, locale, item", body["error"])
		})
	}
}

func TestAddItem_NonObjectItem(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":"not an object"}`
	resp, err := http.Post(srv.URL+"/api/media", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid item format", body["error"])
}

func TestUpdateItem_InvalidItemPayload(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"id":"1","title":"x","year":[1985]}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/media", strings.NewReader(payload))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid item format", body["error"])
}

func TestAddItem_InvalidTypeOrLocale(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"fr","item":{"title":"x"}}`
	resp, err := http.Post(srv.URL+"/api/media", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Invalid type or locale", body["error"])
}

func TestAddItem_LocaleIsolation(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"title":"Новая пьеса","composer":"М. Тертерян"}}`
	resp, err := http.Post(srv.URL+"/api/media", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	item := decodeEnvelope(t, resp)["data"].(map[string]any)
	id := item["id"].(string)

	enResp, err := http.Get(srv.URL + "/api/media?type=music&locale=en")
	require.NoError(t, err)
	tracks := decodeEnvelope(t, enResp)["data"].(map[string]any)["tracks"].([]any)
	for _, tr := range tracks {
		assert.NotEqual(t, id, tr.(map[string]any)["id"], "ru append must not touch en")
	}
}

func TestUpdateItem_ReplacesRecord(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"id":"1","title":"Симфония №1 (ред.)","composer":"Микаэл Тертерян","duration":"24:00","src":"/audio/symphony1.mp3"}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/media", strings.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	item := decodeEnvelope(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Симфония №1 (ред.)", item["title"])

	getResp, err := http.Get(srv.URL + "/api/media?type=music&locale=ru")
	require.NoError(t, err)
	tracks := decodeEnvelope(t, getResp)["data"].(map[string]any)["tracks"].([]any)
	for _, tr := range tracks {
		track := tr.(map[string]any)
		if track["id"] == "1" {
			assert.Equal(t, "Симфония №1 (ред.)", track["title"])
		}
	}
}

func TestUpdateItem_RequiresID(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"title":"Без id"}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/media", strings.NewReader(payload))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Missing required parameters: type, locale, item with id", body["error"])
}

func TestUpdateItem_NotFound(t *testing.T) {
	srv := setupMediaServer(t)

	payload := `{"type":"music","locale":"ru","item":{"id":"999","title":"Нет такой"}}`
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/api/media", strings.NewReader(payload))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item not found", body["error"])
}

func TestDeleteItem_Success(t *testing.T) {
	srv := setupMediaServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/media?type=music&locale=ru&id=1", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Item deleted successfully", body["message"])

	getResp, err := http.Get(srv.URL + "/api/media?type=music&locale=ru")
	require.NoError(t, err)
	tracks := decodeEnvelope(t, getResp)["data"].(map[string]any)["tracks"].([]any)
	for _, tr := range tracks {
		assert.NotEqual(t, "1", tr.(map[string]any)["id"])
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	srv := setupMediaServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/media?type=photos&locale=en&id=999", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Item not found", body["error"])
}

func TestDeleteItem_MissingParameters(t *testing.T) {
	srv := setupMediaServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/media?type=music&locale=ru", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeEnvelope(t, resp)
	assert.Equal(t, "Missing required parameters: type, locale, id", body["error"])
}
