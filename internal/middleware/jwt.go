package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSecret is set from config at startup, before the router is built.
var JWTSecret = []byte("word-guess-dev-secret")

const TokenTTL = 24 * time.Hour

// SignToken issues a token carrying the username and admin flag.
func SignToken(username string, isAdmin bool) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"is_admin": isAdmin,
		"exp":      time.Now().Add(TokenTTL).Unix(),
	}).SignedString(JWTSecret)
}

// JWTAuth validates the Bearer token and puts the claims into the gin
// context as "username" and "is_admin".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no token provided"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		username, _ := claims["username"].(string)
		if username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		isAdmin, _ := claims["is_admin"].(bool)
		c.Set("username", username)
		c.Set("is_admin", isAdmin)

		// Renew soon-to-expire tokens so active players are not logged out.
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 6*time.Hour {
				if newToken, err := SignToken(username, isAdmin); err == nil {
					c.Header("X-New-Token", newToken)
				}
			}
		}

		c.Next()
	}
}

// AdminOnly rejects requests from non-admin users. Must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
