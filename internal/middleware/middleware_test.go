package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mindbet-bot/pkg/log"
)

func newEngine(m Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.RequestID(), m.Recovery(), m.AccessLog())
	r.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(New(log.NewNop()))

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

		if w.Body.String() == "" {
			t.Fatal("expected a generated request id in context")
		}
		if got := w.Header().Get(RequestIDHeader); got != w.Body.String() {
			t.Errorf("header %q does not match context id %q", got, w.Body.String())
		}
	})

	t.Run("propagated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)

		if w.Body.String() != "abc-123" {
			t.Errorf("expected inbound id to be reused, got %q", w.Body.String())
		}
	})
}

func TestRecovery(t *testing.T) {
	r := newEngine(New(log.NewNop()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Success || body.Error != "kaboom" {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New(log.NewNop())

	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		t.Fatalf("trusted proxies: %v", err)
	}
	r.Use(m.RateLimit(4))
	r.POST("/intent", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/intent", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send("1.2.3.4:1000"); w.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", w.Code)
	}

	w := send("1.2.3.4:1001")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Success || body.Error != "too many requests" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}

	if w := send("5.6.7.8:1000"); w.Code != http.StatusOK {
		t.Errorf("other clients have their own bucket, got %d", w.Code)
	}

	open := gin.New()
	open.Use(m.RateLimit(0))
	open.POST("/intent", func(c *gin.Context) { c.Status(http.StatusOK) })
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		open.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/intent", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}
