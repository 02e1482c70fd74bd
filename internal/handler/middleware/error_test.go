package middleware_test

import (
	"errors"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errors.New("gone"), errs.ErrNotFound))
	})
	r.GET("/broken", func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/missing", status: http.StatusNotFound, body: `{"error":{"message":"gone"}}`},
		{path: "/broken", status: http.StatusInternalServerError, body: `{"error":{"message":"Internal server error"}}`},
		{path: "/panic", status: http.StatusInternalServerError, body: `{"error":{"message":"Internal server error"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := nethttptest.NewRecorder()

			r.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
