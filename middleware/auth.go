package middleware

import (
	"errors"
	"net/http"
	"strings"

	"restaurant-order-api/auth"

	"github.com/gin-gonic/gin"
)

const claimsKey = "authClaims"

// AuthRequired validates the bearer token and injects claims into the
// request context. Missing, malformed, badly signed and expired tokens
// all yield 403; expired tokens get their own message for log grepping.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid authorization code."})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			msg := "Invalid token or expired token."
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token expired."
			}
			c.JSON(http.StatusForbidden, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims extracts the validated claims placed by AuthRequired.
func GetClaims(c *gin.Context) *auth.Claims {
	val, _ := c.Get(claimsKey)
	return val.(*auth.Claims)
}
