package middleware

import (
	"net/http"
	"strings"

	"github.com/crewdeck-dev/crewdeck/internal/auth"
	"github.com/crewdeck-dev/crewdeck/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthenticatedUser is the identity triple decoded from the session
// token, validated once here and carried through the request context.
type AuthenticatedUser struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	ClientID uint   `json:"client_id"`
	Role     string `json:"role"`
}

func (u AuthenticatedUser) IsAdmin() bool {
	return u.Role == types.GlobalRoleAdmin
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:       claims.UserID,
			Email:    claims.Email,
			ClientID: claims.ClientID,
			Role:     claims.Role,
		})
		ctx.Next()
	}
}
