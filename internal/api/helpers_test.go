package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/krongr/adboard/internal/api"
	"github.com/krongr/adboard/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestRouter mounts the handlers under the same routes the server uses.
func newTestRouter(userService service.UserService, adService service.AdService) http.Handler {
	r := chi.NewRouter()

	if userService != nil {
		userHandler := api.NewUserHandler(userService)
		r.Post("/users/", userHandler.CreateUser)
	}

	if adService != nil {
		adHandler := api.NewAdHandler(adService)
		r.Get("/ads/", adHandler.ListAds)
		r.Post("/ads/", adHandler.CreateAd)
		r.Patch("/ads/", adHandler.UpdateAd)
		r.Delete("/ads/", adHandler.DeleteAd)
		r.Patch("/ads/{id}", adHandler.UpdateAd)
		r.Delete("/ads/{id}", adHandler.DeleteAd)
	}

	return r
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return parsed
}
