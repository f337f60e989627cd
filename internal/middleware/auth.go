package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coingate/internal/auth"
	"github.com/guttosm/coingate/internal/domain/dto"
)

// UserKey is the context key under which RequireAuth stores the token subject.
const UserKey = "user"

// RequireAuth is a Gin middleware that extracts and validates the bearer
// token before invoking a handler.
//
// Behavior:
//   - No Authorization header, or a scheme other than Bearer -> 403 "Not authenticated".
//   - A Bearer token that fails validation (bad signature, wrong algorithm,
//     expired, missing subject) -> 401 "Could not validate credentials" with
//     a WWW-Authenticate: Bearer header.
//   - On success, stores the token subject under the "user" context key.
//
// Usage:
//
//	protected := router.Group("/v1/coins", middleware.RequireAuth(tokens))
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Not authenticated", nil))
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Not authenticated", nil))
			return
		}

		subject, err := tokens.Validate(token)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Could not validate credentials", nil))
			return
		}

		c.Set(UserKey, subject)
		c.Next()
	}
}
