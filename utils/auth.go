// utils/auth.go
package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ServiceActorID is the actor recorded for automation authenticated with the
// service key instead of a panel user token.
const ServiceActorID = "00000000-0000-0000-0000-000000000000"

// CheckServiceKey verifies a service-to-service key against the bcrypt hash
// in SERVICE_KEY_HASH. Authentication itself belongs to the host panel; this
// only exists for panel automation calling the admin API directly.
func CheckServiceKey(key string) bool {
	hash := os.Getenv("SERVICE_KEY_HASH")
	if hash == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
}

// AuthMiddleware trusts the panel-issued JWT and places the caller's identity
// into the request context. A valid X-Service-Key grants admin role without a
// token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Service-Key"); key != "" {
			if !CheckServiceKey(key) {
				c.AbortWithStatusJSON(401, gin.H{"error": "Invalid service key"})
				return
			}
			c.Set("userId", ServiceActorID)
			c.Set("role", "admin")
			c.Next()
			return
		}

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header required"})
			return
		}

		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("userId", claims["sub"])
			c.Set("role", claims["role"])
		} else {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware rejects callers whose panel token does not carry the admin
// role. Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != "admin" {
			c.AbortWithStatusJSON(403, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
