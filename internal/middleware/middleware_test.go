package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func setupRouter(t *testing.T, h ginext.HandlerFunc) http.Handler {
	t.Helper()
	log := newTestLogger(t)

	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(log), Recovery(log))
	r.GET("/", h)
	return r
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	r := setupRouter(t, func(c *ginext.Context) {
		seen = c.GetString(requestIDKey)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	r := setupRouter(t, func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReplacesGarbage(t *testing.T) {
	r := setupRouter(t, func(c *ginext.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := setupRouter(t, func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
