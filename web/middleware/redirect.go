package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RedirectMiddleware sends short admin paths to their canonical pages.
func RedirectMiddleware() gin.HandlerFunc {
	redirects := map[string]string{
		"/admin":  "/admin/dashboard",
		"/login":  "/admin/login",
		"/logout": "/admin/logout",
	}
	return func(c *gin.Context) {
		path := strings.TrimSuffix(c.Request.URL.Path, "/")
		if to, ok := redirects[path]; ok {
			c.Redirect(http.StatusMovedPermanently, to)
			c.Abort()
			return
		}
		c.Next()
	}
}
