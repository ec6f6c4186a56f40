package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadWasif123/hotel-backend/domain"
)

// AuthMiddleware validates the access token and loads its claims into the
// request context. The token is read from the Authorization header or the
// accessToken cookie, matching what the login flow sets.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("accessToken"); err == nil {
				token = cookie
			}
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"statusCode": http.StatusUnauthorized, "message": "Unauthorized request", "success": false})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			var msg string
			switch err {
			case domain.ErrTokenExpired:
				msg = "Token expired"
			case domain.ErrTokenInvalid, domain.ErrTokenMalformed:
				msg = "Invalid access token"
			default:
				msg = "Token validation failed"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"statusCode": http.StatusUnauthorized, "message": msg, "success": false})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		c.Next()
	})
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
