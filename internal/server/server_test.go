package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadhifr/quizadmin/config"
	"github.com/nadhifr/quizadmin/internal/session"
)

type testServer struct {
	router *gin.Engine
	stores *Stores
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		AdminName:     "Super Admin",
		AdminEmail:    "admin@example.com",
		AdminPassword: "password123",
	}

	stores := NewStores()
	require.NoError(t, stores.Seed(cfg))

	log := logrus.New()
	log.SetOutput(io.Discard)

	sessions := session.NewStore(cfg.JWTSecret, cfg.TokenTTL)
	router, err := NewRouter(stores, sessions, log)
	require.NoError(t, err)

	return &testServer{router: router, stores: stores}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (ts *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/v1/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := ts.body(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestLoginSucceedsWithSeededAdmin(t *testing.T) {
	ts := newTestServer(t)

	token := ts.login(t, "admin@example.com", "password123")

	w := ts.do(t, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	admin := ts.body(t, w)["admin"].(map[string]any)
	assert.Equal(t, "admin@example.com", admin["email"])
}

func TestLoginWrongPasswordLeavesSessionUnauthenticated(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/login", "", gin.H{"email": "admin@example.com", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", ts.body(t, w)["message"])

	w = ts.do(t, http.MethodGet, "/v1/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownEmailIsInvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/login", "", gin.H{"email": "nobody@example.com", "password": "password123"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials.", ts.body(t, w)["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/v1/users", "/v1/categories", "/v1/questions", "/v1/coupons", "/v1/admins", "/v1/meta-data"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin@example.com", "password123")

	w := ts.do(t, http.MethodPost, "/v1/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodGet, "/v1/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	ts := newTestServer(t)
	before := ts.stores.Admins.Len()

	w := ts.do(t, http.MethodPost, "/v1/register", "", gin.H{
		"name":     "Another Admin",
		"email":    "admin@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, before, ts.stores.Admins.Len())
}

func TestRegisterThenLogin(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/register", "", gin.H{
		"name":     "John Admin",
		"email":    "john.admin@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	ts.login(t, "john.admin@example.com", "password123")
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/forgot-password", "", gin.H{"email": "nobody@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Email not found.", ts.body(t, w)["message"])
}

func TestPasswordResetFlow(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/forgot-password", "", gin.H{"email": "admin@example.com"})
	require.Equal(t, http.StatusOK, w.Code)
	resetToken, ok := ts.body(t, w)["reset_token"].(string)
	require.True(t, ok)

	w = ts.do(t, http.MethodPost, "/v1/reset-password", "", gin.H{
		"token":       resetToken,
		"newPassword": "newsecret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/v1/login", "", gin.H{"email": "admin@example.com", "password": "password123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	ts.login(t, "admin@example.com", "newsecret1")
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin@example.com", "password123")

	w := ts.do(t, http.MethodPost, "/v1/reset-password", "", gin.H{
		"token":       token,
		"newPassword": "newsecret1",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSeededCollectionsAreServed(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "admin@example.com", "password123")

	w := ts.do(t, http.MethodGet, "/v1/users", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), ts.body(t, w)["total"])

	w = ts.do(t, http.MethodGet, "/v1/coupons?q=welcome", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), ts.body(t, w)["total"])
}
