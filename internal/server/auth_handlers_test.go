package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	t.Run("creates user and returns it without password", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
			"name":     "Jane Doe",
			"email":    "jane@example.com",
			"password": "Secret_123",
		})
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, true, envelope["success"])

		data := dataMap(t, envelope)
		assert.NotZero(t, data["id"])
		assert.Equal(t, "Jane Doe", data["name"])
		assert.Equal(t, "jane@example.com", data["email"])
		assert.NotContains(t, data, "password")
	})

	t.Run("empty body aggregates every violation", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Bad Request", envelope["error"])
		assert.Equal(t, float64(http.StatusBadRequest), envelope["statusCode"])
		assert.Equal(t, []string{
			"name should not be empty",
			"email should not be empty",
			"password should not be empty",
		}, messageList(t, envelope))
	})

	t.Run("format and strength violations", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
			"name":     "Jane",
			"email":    "not-an-email",
			"password": "invaidpassword",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, []string{
			"email must be an email",
			"password is not strong enough",
		}, messageList(t, envelope))
	})

	t.Run("duplicate email", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
			"name":     "Jane Again",
			"email":    "jane@example.com",
			"password": "Secret_123",
		})
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, false, envelope["success"])
		assert.Equal(t, "Email already exists", envelope["message"])
	})

	t.Run("failed duplicate does not consume an id", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
			"name":     "John Doe",
			"email":    "john@example.com",
			"password": "Secret_123",
		})
		require.Equal(t, http.StatusCreated, status)

		// Jane was id 1; the duplicate attempt in between must not have
		// advanced the sequence.
		data := dataMap(t, envelope)
		assert.Equal(t, float64(2), data["id"])
	})
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "Secret_123",
	})
	require.Equal(t, http.StatusCreated, status)

	t.Run("success issues token", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"email":    "jane@example.com",
			"password": "Secret_123",
		})
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "Login success", envelope["message"])
		assert.NotEmpty(t, dataMap(t, envelope)["access_token"])
	})

	unauthorizedCases := []struct {
		name string
		body map[string]interface{}
	}{
		{"wrong password", map[string]interface{}{"email": "jane@example.com", "password": "Wrong_123"}},
		{"unknown email", map[string]interface{}{"email": "nobody@example.com", "password": "Secret_123"}},
		{"missing password", map[string]interface{}{"email": "jane@example.com"}},
		{"missing email", map[string]interface{}{"password": "Secret_123"}},
		{"empty body", map[string]interface{}{}},
	}

	for _, tt := range unauthorizedCases {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := doJSON(t, app, http.MethodPost, "/auth/login", "", tt.body)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, false, envelope["success"])
			assert.Equal(t, "Unauthorized", envelope["error"])
			assert.Equal(t, "Unauthorized", envelope["message"])
			assert.Equal(t, float64(http.StatusUnauthorized), envelope["statusCode"])
		})
	}
}

func TestMe(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "jane@example.com")

	t.Run("resolves token back to the user", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodGet, "/auth/me", token, nil)
		assert.Equal(t, http.StatusOK, status)

		data := dataMap(t, envelope)
		assert.Equal(t, "Test User", data["name"])
		assert.Equal(t, "jane@example.com", data["email"])
		assert.NotContains(t, data, "password")
	})

	t.Run("missing token", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodGet, "/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Unauthorized", envelope["message"])
	})

	t.Run("garbage token", func(t *testing.T) {
		status, envelope := doJSON(t, app, http.MethodGet, "/auth/me", "not.a.jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
		assert.Equal(t, "Unauthorized", envelope["message"])
	})
}
