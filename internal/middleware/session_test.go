package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Xinhui001/user-center/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newProbeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := session.NewStore(rdb, time.Hour)

	r := gin.New()
	r.Use(SessionMiddleware(store, "uc_session", 3600))
	r.GET("/probe", func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.String(http.StatusInternalServerError, "no session")
			return
		}
		c.String(http.StatusOK, sess.ID())
	})
	return r
}

// TestSessionMiddleware_IssuesCookie 首次访问种下会话 cookie
func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	r := newProbeRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	var issued *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "uc_session" {
			issued = ck
		}
	}
	if issued == nil {
		t.Fatal("no uc_session cookie issued")
	}
	if issued.Value != w.Body.String() {
		t.Errorf("cookie value %q != session id %q", issued.Value, w.Body.String())
	}
}

// TestSessionMiddleware_ReusesCookie 带着 cookie 再访问复用同一会话
func TestSessionMiddleware_ReusesCookie(t *testing.T) {
	r := newProbeRouter(t)

	req, _ := http.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: "uc_session", Value: "known-session-id"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "known-session-id" {
		t.Errorf("session id = %q, want known-session-id", w.Body.String())
	}
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "uc_session" {
			t.Error("cookie reissued although request already had one")
		}
	}
}
