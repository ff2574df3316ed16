package middlewares

import (
	"net/http"
	"strings"

	"github.com/eoreilly0906/Spoon-API/utils"

	"github.com/gin-gonic/gin"
)

// context keys set by AuthMiddleware. Read them through CurrentUserID /
// CurrentUsername instead of poking at the gin context.
const (
	ctxUserIDKey   = "authUserID"
	ctxUsernameKey = "authUsername"
)

// AuthMiddleware gates every protected route. The status split is part
// of the API contract: 401 when no bearer token was presented at all,
// 403 when one was presented but failed verification.
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxUsernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUserID returns the verified identity for this request. Only
// valid downstream of AuthMiddleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(ctxUsernameKey)
}
