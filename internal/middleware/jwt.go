package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/i18n"
)

// Context keys set by the authentication middlewares.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// ErrMissingSubject is returned for tokens without a sub claim.
var ErrMissingSubject = errors.New("token has no subject")

// JWTConfig configures JWTAuth. Tokens are issued by the mobile backend and
// signed with a shared HS256 secret.
type JWTConfig struct {
	Secret []byte
	// Issuer is checked against the iss claim when set.
	Issuer string
}

// Claims are the claims read from an access token.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ParseToken validates tokenString and returns its claims.
func (cfg JWTConfig) ParseToken(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return cfg.Secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// JWTAuth returns a middleware that requires a valid bearer token and stores
// the caller's id and email in the context.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}
		if strings.TrimSpace(tokenString) == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}

		claims, err := cfg.ParseToken(tokenString)
		if err != nil {
			_ = c.Error(err)
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		c.Set(ContextKeyUserID, claims.Subject)
		if claims.Email != "" {
			c.Set(ContextKeyUserEmail, claims.Email)
		}

		c.Next()
	}
}

// GetUserID returns the authenticated caller's id, or "" when the request is anonymous.
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

// GetUserEmail returns the authenticated caller's email, if the token carried one.
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ContextKeyUserEmail)
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
