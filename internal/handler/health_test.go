package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHealthChecker mocks HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("All ready", func(t *testing.T) {
		checker := &MockHealthChecker{}
		checker.On("CheckHealth", mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		checker.AssertExpectations(t)
	})

	t.Run("Shutting down", func(t *testing.T) {
		checker := &MockHealthChecker{}
		checker.On("CheckHealth", mock.Anything).Return(errors.New("shutting down"))

		w := httptest.NewRecorder()
		HandleReadyz(checker).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"message":"shutting down"`)
		checker.AssertExpectations(t)
	})

	t.Run("No checkers", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("1.4.0").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.NewDecoder(w.Body).Decode(&info))
	assert.Equal(t, "1.4.0", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestResolveVersion(t *testing.T) {
	assert.Equal(t, "dev", resolveVersion(""))
	assert.Equal(t, "2.0.0", resolveVersion("2.0.0"))

	original := Version
	Version = "3.1.0"
	defer func() { Version = original }()
	assert.Equal(t, "3.1.0", resolveVersion("2.0.0"))
}
