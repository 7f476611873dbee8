package middleware

import (
	"github.com/Xinhui001/user-center/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSessionKey = "session"

// SessionMiddleware 把请求 cookie 对应的会话句柄放进 context。
// 首次访问没有 cookie 时生成一个新的会话 id 并种下 cookie。
func SessionMiddleware(store *session.Store, cookieName string, maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cookieName, sid, maxAge, "/", "", false, true)
		}
		c.Set(ctxSessionKey, store.Session(sid))
		c.Next()
	}
}

// CurrentSession 取出 SessionMiddleware 放进 context 的会话句柄
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
