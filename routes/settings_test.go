package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"apuntes-app/apuntes/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type MockSettingService struct {
	values map[string]string
}

func (m *MockSettingService) GetSetting(db *database.Database, userID, key string) (string, error) {
	return m.values[userID+"/"+key], nil
}

func (m *MockSettingService) SetSetting(db *database.Database, userID, key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[userID+"/"+key] = value
	return nil
}

func setupSettingsRouter(authenticated bool) (*gin.Engine, *MockSettingService) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if authenticated {
		router.Use(func(c *gin.Context) { c.Set("userID", testUserID) })
	}
	service := &MockSettingService{}
	group := router.Group("/api")
	RegisterSettingRoutes(group, &database.Database{}, service)
	return router, service
}

func TestQuickNote_Routes(t *testing.T) {
	router, _ := setupSettingsRouter(true)

	t.Run("Empty before first write", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/settings/quicknote", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"value":""}`, w.Body.String())
	})

	t.Run("Put then get round-trips", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/settings/quicknote", bytes.NewBufferString(`{"content":"recordar: laboratorio jueves"}`))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/settings/quicknote", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"value":"recordar: laboratorio jueves"}`, w.Body.String())
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/settings/quicknote", bytes.NewBufferString("not json"))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuickNote_Unauthenticated(t *testing.T) {
	router, _ := setupSettingsRouter(false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/settings/quicknote", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
