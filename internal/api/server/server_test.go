package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-canvas/internal/api/middleware"
	"github.com/feral-file/ff-canvas/internal/metrics"
	"github.com/feral-file/ff-canvas/internal/mocks"
)

func newTestServer(t *testing.T, gatherer prometheus.Gatherer) http.Handler {
	ctrl := gomock.NewController(t)
	s := New(Config{}, mocks.NewMockService(ctrl), mocks.NewMockClock(ctrl), middleware.AuthConfig{APIKeys: []string{"secret"}}, gatherer)
	return s.Router()
}

func TestRouter_Health(t *testing.T) {
	router := newTestServer(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))
}

func TestRouter_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New("test")
	require.NoError(t, m.Register(registry))
	m.SetBacklog(3)

	router := newTestServer(t, registry)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_")
}

func TestRouter_MetricsDisabled(t *testing.T) {
	router := newTestServer(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MutationsRequireAuth(t *testing.T) {
	router := newTestServer(t, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/assets", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// API keys carry no caller so user operations are rejected by the handler
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/1/lock", nil)
	req.Header.Set("Authorization", "ApiKey secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
