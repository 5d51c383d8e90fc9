// Package middleware holds the gin middleware of the feeding service:
// authentication, request logging and auditing, limits and timeouts.
package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. Prometheus scrapes
// and the swagger UI are left alone.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/metrics", "/swagger"}))
}
