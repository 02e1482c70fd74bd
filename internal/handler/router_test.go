package handler_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	commandsmock "shareit/internal/mock/commands"
	queriesmock "shareit/internal/mock/queries"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"
	"shareit/internal/testkit/httptest"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *queriesmock.MockBookingQueries) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	metrics.Register()

	ctrl := gomock.NewController(t)
	bookingQueries := queriesmock.NewMockBookingQueries(ctrl)
	h := handler.Handlers{
		Booking: api.NewBookingHandler(commandsmock.NewMockBookingCommands(ctrl), bookingQueries, clock.NewRealClock(), time.UTC),
		Comment: api.NewCommentHandler(commandsmock.NewMockCommentCommands(ctrl), queriesmock.NewMockCommentQueries(ctrl), time.UTC),
	}
	cfg := config.NewTestConfig()
	logger := middleware.NewTestLogger(&bytes.Buffer{}, cfg.Log)

	engine := gin.New()
	handler.NewRouter(engine, cfg, logger, h)
	return engine, bookingQueries
}

func TestRouter(t *testing.T) {
	engine, bookingQueries := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		w := nethttptest.NewRecorder()
		engine.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("booking routes require the identity header", func(t *testing.T) {
		w := nethttptest.NewRecorder()
		engine.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/bookings", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner listing is not captured by the booking id route", func(t *testing.T) {
		bookingQueries.EXPECT().ListForOwner(gomock.Any(), int64(5), booking.StateAll).
			Return([]*queries.BookingView{}, nil).Times(1)

		req := nethttptest.NewRequest(http.MethodGet, "/bookings/owner", nil)
		req.Header.Set(middleware.SharerUserHeader, "5")
		w := nethttptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("caller request id is echoed", func(t *testing.T) {
		req := nethttptest.NewRequest(http.MethodGet, "/bookings", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-42")
		w := nethttptest.NewRecorder()
		engine.ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{
			middleware.RequestIDHeader: "trace-42",
			"Content-Type":             "application/json; charset=utf-8",
		})
	})

	t.Run("metrics exposition", func(t *testing.T) {
		w := nethttptest.NewRecorder()
		engine.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "shareit_http_requests_total")
	})
}
