package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

func newLimitedRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitLogin(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("starting miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("E2E_MODE", "")

	t.Run("allows attempts within the window budget", func(t *testing.T) {
		_, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusOK {
				t.Fatalf("attempt %d: status = %d, want 200", i+1, w.Code)
			}
		}
	})

	t.Run("rejects the attempt past the budget", func(t *testing.T) {
		_, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 3, time.Minute))

		for i := 0; i < 3; i++ {
			hitLogin(r, "10.0.0.1:4000")
		}
		w := hitLogin(r, "10.0.0.1:4000")
		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429", w.Code)
		}
		if body := w.Body.String(); !strings.Contains(body, string(domainerror.ErrCodeRateLimited)) {
			t.Errorf("body %q missing code %s", body, domainerror.ErrCodeRateLimited)
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		_, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 1, time.Minute))

		if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusOK {
			t.Fatalf("first client: status = %d, want 200", w.Code)
		}
		if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("first client second attempt: status = %d, want 429", w.Code)
		}
		if w := hitLogin(r, "10.0.0.2:4000"); w.Code != http.StatusOK {
			t.Errorf("second client: status = %d, want 200", w.Code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		mr, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 1, time.Minute))

		hitLogin(r, "10.0.0.1:4000")
		if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want 429 before expiry", w.Code)
		}

		mr.FastForward(2 * time.Minute)

		if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200 after window expiry", w.Code)
		}
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		mr, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 1, time.Minute))
		mr.Close()

		for i := 0; i < 3; i++ {
			if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusOK {
				t.Fatalf("attempt %d: status = %d, want 200 when redis is down", i+1, w.Code)
			}
		}
	})

	t.Run("skipped in the test environment", func(t *testing.T) {
		t.Setenv("ENV", "test")
		_, client := newMiniredisClient(t)
		r := newLimitedRouter(t, NewRateLimiterWithConfig(client, 1, time.Minute))

		for i := 0; i < 5; i++ {
			if w := hitLogin(r, "10.0.0.1:4000"); w.Code != http.StatusOK {
				t.Fatalf("attempt %d: status = %d, want 200 in test env", i+1, w.Code)
			}
		}
	})
}
