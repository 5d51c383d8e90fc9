package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// IdempotencyKeyHeader is the header the app sends when it may retry a save.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks responses served from the replay cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"

	defaultIdempotencyTTL  = 5 * time.Minute
	defaultIdempotencySize = 10_000
)

type cachedResponse struct {
	statusCode  int
	contentType string
	body        []byte
}

// IdempotencyConfig holds configuration for the idempotency middleware.
type IdempotencyConfig struct {
	TTL  time.Duration
	Size int
}

// DefaultIdempotencyConfig returns the replay window used by the server.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{TTL: defaultIdempotencyTTL, Size: defaultIdempotencySize}
}

// Idempotency replays the first successful response of a write that is retried
// with the same Idempotency-Key, so a flaky connection does not store the same
// feeding target twice. Keys are scoped by caller, method, path and body.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	defaults := DefaultIdempotencyConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = defaults.TTL
	}
	if cfg.Size <= 0 {
		cfg.Size = defaults.Size
	}
	responses := expirable.NewLRU[string, cachedResponse](cfg.Size, nil, cfg.TTL)

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		cacheKey, err := idempotencyCacheKey(c, key)
		if err != nil {
			_ = c.Error(err)
			c.Next()
			return
		}

		if cached, ok := responses.Get(cacheKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.statusCode, cached.contentType, cached.body)
			c.Abort()
			return
		}

		writer := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if status := writer.Status(); status >= 200 && status < 300 {
			responses.Add(cacheKey, cachedResponse{
				statusCode:  status,
				contentType: writer.Header().Get("Content-Type"),
				body:        writer.body.Bytes(),
			})
		}
	}
}

func idempotencyCacheKey(c *gin.Context, key string) (string, error) {
	hasher := sha256.New()
	for _, part := range []string{key, GetUserID(c), c.Request.Method, c.Request.URL.Path} {
		hasher.Write([]byte(part))
		hasher.Write([]byte{0})
	}

	if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", err
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// capturingWriter tees the response body so it can be replayed.
type capturingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
