package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			c.Abort()
			return
		}

		role, err := ExtractRoleFromToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Forbidden: Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func ExtractRoleFromToken(authHeader string) (string, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", errors.New("invalid token format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	role, ok := claims["user_role"].(string)
	if !ok {
		return "", errors.New("role not found in token")
	}

	return role, nil
}
