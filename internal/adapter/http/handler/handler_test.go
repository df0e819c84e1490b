package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/internal/core/ports/mocks"
	"lnurlp-webhook/internal/metrics"
	"lnurlp-webhook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) HealthReport {
	t.Helper()
	var env struct {
		Data HealthReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mocks.NewMockHealthChecker(ctrl)
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	db.EXPECT().Name().Return("postgresql").AnyTimes()

	router := SetupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{db}, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	report := decodeHealth(t, w)
	assert.Equal(t, "healthy", report.Status)
	assert.Equal(t, "healthy", report.Dependencies["postgresql"].Status)
}

func TestHealthCheck_NoDependenciesUsesSuccessEnvelope(t *testing.T) {
	router := SetupRouter(RouterDeps{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.NotEmpty(t, env.RequestID)
	assert.NotEmpty(t, env.Timestamp)
	assert.Equal(t, "healthy", decodeHealth(t, w).Status)
}

func TestHealthCheck_Degraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := mocks.NewMockHealthChecker(ctrl)
	db.EXPECT().Ping(gomock.Any()).Return(nil)
	db.EXPECT().Name().Return("postgresql").AnyTimes()

	queue := mocks.NewMockHealthChecker(ctrl)
	queue.EXPECT().Ping(gomock.Any()).DoAndReturn(func(context.Context) error {
		return errors.New("connection refused")
	})
	queue.EXPECT().Name().Return("redis").AnyTimes()

	router := SetupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{db, queue}, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	report := decodeHealth(t, w)
	assert.Equal(t, "degraded", report.Status)
	assert.Equal(t, "unhealthy", report.Dependencies["redis"].Status)
	assert.Equal(t, "connection refused", report.Dependencies["redis"].Error)
	assert.Equal(t, "healthy", report.Dependencies["postgresql"].Status)
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.MustRegister(reg)
	metrics.EventsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	router := SetupRouter(RouterDeps{Gatherer: reg, Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `lnw_events_total{result="success"}`))
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	router := SetupRouter(RouterDeps{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := SetupRouter(RouterDeps{Logger: zerolog.Nop()})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var env response.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, w.Header().Get("X-Request-ID"), env.RequestID)
}
