package httptest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"shareit/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON. A zero userID omits the sharer header.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, userID int64) *httptest.ResponseRecorder {
	t.Helper()

	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(middleware.SharerUserHeader, strconv.FormatInt(userID, 10))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformRawRequest sets the sharer header verbatim, for malformed values.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, rawUserID string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(middleware.SharerUserHeader, rawUserID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
