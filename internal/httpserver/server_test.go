package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"api-scaffold/config"
	"api-scaffold/internal/httpserver"
	"api-scaffold/internal/middleware"
	"api-scaffold/internal/model"
	"api-scaffold/pkg/database"
	pkgErrors "api-scaffold/pkg/errors"
	"api-scaffold/pkg/log"
	"api-scaffold/pkg/scope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newServer(t *testing.T, db *bun.DB) *httpserver.HTTPServer {
	t.Helper()
	jwt, err := scope.New("test-secret", time.Hour)
	require.NoError(t, err)

	srv, err := httpserver.New(httpserver.Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        "test",
		Environment: "test",
		DB:          db,
		JWTManager:  jwt,
		CORS:        config.CORSConfig{AllowedOrigins: []string{"*"}},
	})
	require.NoError(t, err)
	return srv
}

func mockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	db := bun.NewDB(sqlDB, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func send(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_Validates(t *testing.T) {
	_, err := httpserver.New(httpserver.Config{Logger: log.NewNop(), Port: 8080, Mode: "test"})
	assert.Error(t, err)
}

func TestReady(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectPing()

		w := send(newServer(t, db).Handler(), http.MethodGet, "/ready", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"up"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		db, mock := mockDB(t)
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		w := send(newServer(t, db).Handler(), http.MethodGet, "/ready", "", "")

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body pkgErrors.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, pkgErrors.CodeDatabase, body.Error)
		assert.Equal(t, "Database unavailable", body.Message)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestSystemRoutesAndGlobalMiddleware(t *testing.T) {
	db, _ := mockDB(t)
	h := newServer(t, db).Handler()

	for _, path := range []string{"/health", "/live"} {
		w := send(h, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), path)
	}

	w := send(h, http.MethodGet, "/api/v1/items", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEndToEnd(t *testing.T) {
	ctx := context.Background()
	db, err := database.Connect(ctx, database.Config{Driver: "sqlite", SQLitePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Disconnect(db) })
	require.NoError(t, database.Migrate(ctx, db, model.All()...))

	h := newServer(t, db).Handler()

	w := send(h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"ann@x.io","name":"Ann","password":"password-1"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = send(h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"ann@x.io","name":"Ann","password":"password-1"}`)
	require.Equal(t, http.StatusConflict, w.Code)

	w = send(h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"ann@x.io","password":"password-1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login.Data.AccessToken
	require.NotEmpty(t, token)

	w = send(h, http.MethodPost, "/api/v1/items/bulk", token, `{"items":[{"name":"a"},{"name":"b"}]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = send(h, http.MethodPatch, "/api/v1/items/status", token, `{"ids":[1,2,99],"status":"inactive"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = send(h, http.MethodGet, "/api/v1/items?status=inactive", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = send(h, http.MethodGet, "/api/v1/items?mine=true", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)

	w = send(h, http.MethodGet, "/api/v1/users", token, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(h, http.MethodPost, "/api/v1/auth/register", "", `{"email":"bob@x.io","name":"Bob","password":"password-2"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = send(h, http.MethodPost, "/api/v1/auth/login", "", `{"email":"bob@x.io","password":"password-2"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	other := login.Data.AccessToken

	w = send(h, http.MethodDelete, "/api/v1/items/1", other, "")
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	w = send(h, http.MethodPut, "/api/v1/items/1", other, `{"name":"stolen"}`)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	w = send(h, http.MethodPatch, "/api/v1/items/status", other, `{"ids":[1],"status":"inactive"}`)
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = send(h, http.MethodDelete, "/api/v1/items/1", token, "")
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
