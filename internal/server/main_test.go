package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quill/internal/config"
	"quill/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a full application over a fresh in-memory sqlite database.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	cfg := &config.Config{
		Port:      "0",
		JWTSecret: "integration-test-secret-0123456789abcdef",
		DBDriver:  "sqlite",
		Env:       "test",
	}

	srv, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	return srv.NewApp()
}

// doJSON performs a request against the app and decodes the response envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp.StatusCode, envelope
}

// registerAndLogin creates a user and returns a valid bearer token.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Test User",
		"email":    email,
		"password": "Secret_123",
	})
	require.Equal(t, http.StatusCreated, status)

	status, envelope := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "Secret_123",
	})
	require.Equal(t, http.StatusOK, status)

	data := envelope["data"].(map[string]interface{})
	token := data["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

// dataMap extracts the data object from a success envelope.
func dataMap(t *testing.T, envelope map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok, "envelope data is not an object: %v", envelope)
	return data
}

// messageList extracts the aggregated validation message list.
func messageList(t *testing.T, envelope map[string]interface{}) []string {
	t.Helper()
	raw, ok := envelope["message"].([]interface{})
	require.True(t, ok, "envelope message is not a list: %v", envelope)
	msgs := make([]string, len(raw))
	for i, m := range raw {
		msgs[i] = m.(string)
	}
	return msgs
}
