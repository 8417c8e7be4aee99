package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/haydenmontgomery/Warbler/internal/config"
	"github.com/haydenmontgomery/Warbler/internal/handlers"
	"github.com/haydenmontgomery/Warbler/internal/models"
	"github.com/haydenmontgomery/Warbler/internal/routes"
	"github.com/haydenmontgomery/Warbler/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	testDBCounter int64
	ipCounter     int64
)

// setupTest builds a fresh in-memory SQLite database plus a fully routed
// engine against it. Redis stays disconnected; the cache and blacklist
// helpers degrade to no-ops.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	logger.Log = zerolog.Nop()
	config.AppConfig = &config.Config{JWTSecret: "test_secret_key_12345"}

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:integration_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}, &models.Follow{}, &models.Like{}))

	h := handlers.New(db)
	r := gin.New()
	routes.Register(r, h)

	return r, db
}

// performRequest drives the router through httptest. Each request gets its
// own client IP so the per-IP rate limiters never interfere with tests.
func performRequest(r *gin.Engine, method, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	ip := atomic.AddInt64(&ipCounter, 1)
	req.RemoteAddr = fmt.Sprintf("10.%d.%d.%d:52428", ip/65536%256, ip/256%256, ip%256)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// createTestUser signs a user up through the API and returns the bearer
// token plus the assigned id.
func createTestUser(t *testing.T, r *gin.Engine, username, email string) (string, uint) {
	w := performRequest(r, "POST", "/api/auth/signup", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": "pass123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	resp := decodeBody(t, w)
	token := resp["token"].(string)
	user := resp["user"].(map[string]interface{})
	return token, uint(user["id"].(float64))
}
