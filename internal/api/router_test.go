package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"round-trip-planner/internal/adapters/distance"
	"round-trip-planner/internal/domain"
	"round-trip-planner/internal/services"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, selection domain.Selection, maxStops int) http.Handler {
	t.Helper()
	o, err := services.NewRouteOptimizer(distance.NewHaversineDistanceProvider(), selection)
	require.NoError(t, err)
	return NewRouter(o, maxStops)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 0)

	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = do(t, h, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 0)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "click-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "click-42", rec.Header().Get("X-Request-ID"))
}

func TestRouteWithoutHomeIsNotFound(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 0)

	rec := do(t, h, http.MethodGet, "/route", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"no home location set"}`, rec.Body.String())
}

func TestAddLocationsAndRoute(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 0)

	rec := do(t, h, http.MethodPost, "/locations", `{"lng":0,"lat":0}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"role":"home","index":0,"location":{"lng":0,"lat":0}}`, rec.Body.String())

	// Home alone is a trivial round trip.
	rec = do(t, h, http.MethodGet, "/route", "")
	require.Equal(t, http.StatusOK, rec.Code)
	trivial := decode[map[string]any](t, rec)
	assert.Equal(t, 0.0, trivial["total_distance_km"])

	rec = do(t, h, http.MethodPost, "/locations", `{"lng":1,"lat":0}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"role":"stop","index":0,"location":{"lng":1,"lat":0}}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/locations", `{"lng":0,"lat":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/locations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"home":{"lng":0,"lat":0},"stops":[{"lng":1,"lat":0},{"lng":0,"lat":1}]}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/route", "")
	require.Equal(t, http.StatusOK, rec.Code)

	type routeBody struct {
		Selection       string  `json:"selection"`
		TotalDistanceKm float64 `json:"total_distance_km"`
		Route           []struct {
			Role string  `json:"role"`
			Lng  float64 `json:"lng"`
			Lat  float64 `json:"lat"`
		} `json:"route"`
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	}
	body := decode[routeBody](t, rec)

	home, a, b := domain.NewPoint(0, 0), domain.NewPoint(1, 0), domain.NewPoint(0, 1)
	want := home.DistanceTo(a) + a.DistanceTo(b) + b.DistanceTo(home)

	assert.Equal(t, "longest", body.Selection)
	assert.InDelta(t, want, body.TotalDistanceKm, 1e-9)
	require.Len(t, body.Route, 4)
	assert.Equal(t, "home", body.Route[0].Role)
	assert.Equal(t, "stop", body.Route[1].Role)
	assert.Equal(t, "home", body.Route[3].Role)
	assert.Equal(t, "LineString", body.Geometry.Type)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0}, {0, 1}, {0, 0}}, body.Geometry.Coordinates)
}

func TestAddLocationValidation(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 0)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed", `{"lng":`, "invalid json body"},
		{"unknown field", `{"lng":1,"lat":1,"alt":3}`, "invalid json body"},
		{"trailing object", `{"lng":1,"lat":1}{}`, "body must contain only one JSON object"},
		{"missing lat", `{"lng":1}`, "lat is required"},
		{"longitude out of range", `{"lng":181,"lat":1}`, "lng must be between -180 and 180"},
		{"latitude out of range", `{"lng":1,"lat":-91}`, "lat must be between -90 and 90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/locations", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}

	// Nothing invalid reached the stop set.
	rec := do(t, h, http.MethodGet, "/locations", "")
	assert.JSONEq(t, `{"home":null,"stops":[]}`, rec.Body.String())
}

func TestAddLocationStopLimit(t *testing.T) {
	h := newTestRouter(t, domain.SelectLongest, 1)

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/locations", `{"lng":0,"lat":0}`).Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/locations", `{"lng":1,"lat":1}`).Code)

	rec := do(t, h, http.MethodPost, "/locations", `{"lng":2,"lat":2}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"stop limit of 1 reached"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestRouter(t, domain.SelectShortest, 0)

	rec := do(t, h, http.MethodDelete, "/locations", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	rec = do(t, h, http.MethodPost, "/route", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
