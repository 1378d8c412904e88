package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const CodeReadOnly = "read_only"

// SecurityHeadersMiddleware adds security headers to all responses. The API
// serves JSON only, so nothing may be framed or loaded from it.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

// ReadOnlyMiddleware rejects every request that could write to the store.
// GET, HEAD and OPTIONS pass through.
func ReadOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
			Error: "the store is read-only",
			Code:  CodeReadOnly,
		})
	}
}
