package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"flyerboard/internal/handler/httperr"
	"flyerboard/internal/pkg/errs"
	"flyerboard/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxUserIDKey      = "user_id"
	ctxDisplayNameKey = "display_name"
)

// AuthMiddleware validates bearer tokens issued by the external auth
// provider and puts the caller's identity on the request context.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing bearer token"), "Access token required", nil)
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxDisplayNameKey, claims.DisplayName)
		c.Set("jwt_claims", map[string]any{
			"user_id":      claims.UserID.String(),
			"display_name": claims.DisplayName,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetDisplayName(c *gin.Context) (string, bool) {
	name, exists := c.Get(ctxDisplayNameKey)
	if !exists {
		return "", false
	}

	n, ok := name.(string)
	return n, ok
}
