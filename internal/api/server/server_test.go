package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eos420/indexer-api/internal/adapter"
	"github.com/eos420/indexer-api/internal/api/middleware"
	"github.com/eos420/indexer-api/internal/api/server"
	"github.com/eos420/indexer-api/internal/cache"
	"github.com/eos420/indexer-api/internal/id"
	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/manager"
	"github.com/eos420/indexer-api/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestServer_Router(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	managers, err := manager.New(mocks.NewMockStore(ctrl), cache.DefaultConfig(), adapter.NewClock(), id.New(3, adapter.NewClock()))
	require.NoError(t, err)

	srv := server.New(server.Config{WorkerPoolSize: 2}, managers)
	router := srv.Router()
	defer func() {
		require.NoError(t, srv.Shutdown(context.Background()))
	}()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/token", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("validation runs before storage", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
