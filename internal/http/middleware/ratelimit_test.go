package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func limiterRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.GET("/x", rl.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiter(0, 3, KeyByUserOrIP())
	r := limiterRouter(rl)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d; want 200", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("over-burst request: status = %d; want 429", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("Retry-After = %q; want %q", w.Header().Get("Retry-After"), "1")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(0, 1, func(c *gin.Context) string {
		return c.GetHeader("X-Key")
	})
	r := limiterRouter(rl)

	do := func(key string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Key", key)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do("a") != http.StatusOK {
		t.Fatalf("first request for key a should pass")
	}
	if do("a") != http.StatusTooManyRequests {
		t.Fatalf("second request for key a should be limited")
	}
	if do("b") != http.StatusOK {
		t.Fatalf("key b has its own bucket and should pass")
	}
}

func TestRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByUserOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d; want 1", rl.burst)
	}
}

func TestKeyByUserOrIP(t *testing.T) {
	keyFn := KeyByUserOrIP()
	r := gin.New()
	var got string
	r.GET("/x", func(c *gin.Context) {
		if c.Query("user") != "" {
			c.Set(usernameKey, c.Query("user"))
		}
		got = keyFn(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x?user=parent", nil))
	if got != "user:parent" {
		t.Fatalf("key = %q; want %q", got, "user:parent")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if len(got) < 4 || got[:3] != "ip:" {
		t.Fatalf("anonymous key = %q; want ip: prefix", got)
	}
}
