package middleware

import (
	"net/http"

	"github.com/folio-panel/folio/util/common"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps request bodies at max bytes. Declared oversize
// bodies are refused up front; undeclared ones fail while being read.
func BodyLimitMiddleware(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > max {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "request body exceeds " + common.FormatSize(max),
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
