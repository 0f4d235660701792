package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testCtx(t *testing.T, realIP string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/debug/vars", nil)
	if realIP != "" {
		c.Set("real_ip", realIP)
	}
	return c
}

func TestKeyByIP(t *testing.T) {
	assert.Equal(t, "rl:ip:203.0.113.7", KeyByIP()(testCtx(t, "203.0.113.7")))
}

func TestKeyByUserID(t *testing.T) {
	c := testCtx(t, "203.0.113.7")
	assert.Equal(t, "rl:user:anon:ip:203.0.113.7", KeyByUserID()(c))

	c.Set("userID", "u-1")
	assert.Equal(t, "rl:user:u-1", KeyByUserID()(c))
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()

	assert.True(t, allow(testCtx(t, "127.0.0.1")))
	assert.True(t, allow(testCtx(t, "10.1.2.3")))
	assert.True(t, allow(testCtx(t, "192.168.0.10")))
	assert.False(t, allow(testCtx(t, "203.0.113.7")))
	assert.False(t, allow(testCtx(t, "not-an-ip")))
}

func TestRateLimitDisabledWithoutRedis(t *testing.T) {
	// without a redis client the limiter degrades to a pass-through
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("real_ip", "10.0.0.5") })
	r.GET("/debug/vars", RateLimit(nil, 1, 0, KeyByIP(), AllowPrivateIP()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
