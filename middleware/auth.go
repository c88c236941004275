package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/xpluscommerce/storefront-api/models"
)

const SessionCookie = "session"

// ValidateSession authenticates the request from the session cookie (or a bearer
// token for non-browser clients) and loads user_id, username and role into the gin
// context.
func ValidateSession(c *gin.Context) {
	tokenString, err := c.Cookie(SessionCookie)
	if err != nil || tokenString == "" {
		header := c.GetHeader("Authorization")
		tokenString = strings.TrimPrefix(header, "Bearer ")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session claims"})
		c.Abort()
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session claims"})
		c.Abort()
		return
	}
	c.Set("user_id", uint(userID))
	if username, ok := claims["username"].(string); ok {
		c.Set("username", username)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}

	c.Next()
}

// RequireAdmin rejects any session whose role is not admin. Must run after
// ValidateSession.
func RequireAdmin(c *gin.Context) {
	role := c.GetString("role")
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
