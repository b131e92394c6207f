package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		assert.NotEmpty(t, RequestIDFromCtx(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRequestIDHonorsCallerSupplied(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, "caller-id-1", RequestIDFromCtx(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "caller-id-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-id-1", w.Header().Get(RequestIDHeader))
}

func TestOptionsMiddlewareShortCircuitsPreflight(t *testing.T) {
	r := gin.New()
	r.Use(OptionsMiddleware)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogSampler(t *testing.T) {
	s := newLogSampler(LogSamplingConfig{Tick: time.Hour, After: 100 * time.Millisecond})

	assert.True(t, s.Allow(time.Millisecond))  // first sample always passes
	assert.False(t, s.Allow(time.Millisecond)) // throttled within the tick
	assert.True(t, s.Allow(time.Second))       // slow requests bypass sampling

	unthrottled := newLogSampler(LogSamplingConfig{})
	assert.True(t, unthrottled.Allow(time.Millisecond))
	assert.True(t, unthrottled.Allow(time.Millisecond))
}
