package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-eats-api/handlers"
	"campus-eats-api/routes"
	"campus-eats-api/seed"
	"campus-eats-api/services"
	"campus-eats-api/storage"
	"campus-eats-api/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// setupRouter wires memory-backed stores into the handlers and registers
// the real route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	records := storage.NewMemory()
	identity := store.NewIdentity(records, seed.Users())
	catalog := store.NewCatalog(records, seed.Restaurants(), seed.Menu())
	handlers.Use(identity, catalog, services.NewDescriber("", "test-model"))

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// login returns a token for an existing account.
func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)
	assert.NotEmpty(t, token)
	return token
}
