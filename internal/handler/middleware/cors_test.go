package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(t *testing.T, cfg config.CORSConfig, origin string) *nethttptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(cfg))
	r.GET("/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := nethttptest.NewRequest(http.MethodOptions, "/bookings", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", middleware.SharerUserHeader)
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewCORSMiddleware(t *testing.T) {
	t.Run("identity header is allowed even when not configured", func(t *testing.T) {
		w := preflight(t, config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{http.MethodGet},
			AllowHeaders: []string{"Content-Type"},
			MaxAge:       time.Hour,
		}, "http://localhost:3000")

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), middleware.SharerUserHeader)
	})

	t.Run("empty origin list allows everyone", func(t *testing.T) {
		w := preflight(t, config.CORSConfig{AllowMethods: []string{http.MethodGet}}, "http://frontend.test")

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
