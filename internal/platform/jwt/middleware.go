// Package jwtmw provides JWT generation and gin middleware for route protection.
package jwtmw

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextUserID is the gin context key under which the authenticated user ID is stored.
	ContextUserID = "userID"
	// EnvKeyJWTSecret is the environment variable holding the HMAC signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	bearerPrefix = "Bearer "
)

var errNoSecret = errors.New("jwtmw: JWT_SECRET is not set")

// parseToken verifies the signature and returns the parsed token.
// Only HMAC is accepted; anything else (including none) is rejected.
func parseToken(raw string) (*jwt.Token, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return nil, errNoSecret
	}
	return jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
}

// AuthRequired returns a gin middleware that rejects requests without a
// valid Bearer token. On success the token's sub claim is stored in the
// context under ContextUserID.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token, err := parseToken(strings.TrimPrefix(auth, bearerPrefix))
		if errors.Is(err, errNoSecret) {
			// Server misconfiguration, not a client error
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(float64); ok { // JWT numbers decode as float64
				c.Set(ContextUserID, uint(sub))
			}
		}
		c.Next()
	}
}
