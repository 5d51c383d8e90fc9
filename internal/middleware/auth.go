package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/i18n"
	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyHeader is the HTTP header name for API key authentication.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter name for API key authentication.
	APIKeyQuery = "api_key"
)

// apiKeyVerifier checks presented keys against plain keys and bcrypt hashes.
// Keys that matched a hash are remembered so bcrypt runs once per key.
type apiKeyVerifier struct {
	plain    map[string]bool
	hashes   [][]byte
	verified sync.Map
}

func newAPIKeyVerifier(validKeys map[string]bool) *apiKeyVerifier {
	v := &apiKeyVerifier{plain: make(map[string]bool, len(validKeys))}
	for key, enabled := range validKeys {
		if !enabled {
			continue
		}
		if isBcryptHash(key) {
			v.hashes = append(v.hashes, []byte(key))
			continue
		}
		v.plain[key] = true
	}
	return v
}

func isBcryptHash(key string) bool {
	return strings.HasPrefix(key, "$2a$") || strings.HasPrefix(key, "$2b$") || strings.HasPrefix(key, "$2y$")
}

func (v *apiKeyVerifier) empty() bool {
	return len(v.plain) == 0 && len(v.hashes) == 0
}

func (v *apiKeyVerifier) valid(key string) bool {
	if v.plain[key] {
		return true
	}
	if _, ok := v.verified.Load(key); ok {
		return true
	}
	for _, hash := range v.hashes {
		if bcrypt.CompareHashAndPassword(hash, []byte(key)) == nil {
			v.verified.Store(key, struct{}{})
			return true
		}
	}
	return false
}

// APIKeyAuth returns a middleware that validates API keys.
// It checks the X-API-Key header first, then falls back to api_key query parameter.
// Configured keys may be plain values or bcrypt hashes (see scripts/generate_keys.go).
// If validKeys is nil or empty, authentication is disabled.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	verifier := newAPIKeyVerifier(validKeys)

	return func(c *gin.Context) {
		if verifier.empty() {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		if key == "" {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyAPIKeyRequired, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		if !verifier.valid(key) {
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, i18n.GetTranslator().Translate(i18n.ErrKeyInvalidAPIKey, locale)).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
			return
		}

		c.Next()
	}
}
