package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hotel-reservation/utils"
)

const APIKeyHeader = "X-API-Key"

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// keyMatches compares against a plain key or, when expected is a bcrypt
// hash, against the hash.
func keyMatches(expected, given string) bool {
	if isBcryptHash(expected) {
		return bcrypt.CompareHashAndPassword([]byte(expected), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(expected)) == 1
}

// RequireAPIKey guards a route group when key is non-empty; with an empty key
// every request passes.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		if !keyMatches(key, c.GetHeader(APIKeyHeader)) {
			utils.JSONError(c, http.StatusUnauthorized, "missing or invalid API key")
			c.Abort()
			return
		}
		c.Next()
	}
}
