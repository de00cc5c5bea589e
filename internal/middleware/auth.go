package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
	"github.com/openhired/jobboard/internal/token"
)

const currentUserKey = "currentUser"

// Auth verifies bearer tokens and resolves the acting user.
type Auth struct {
	tokens *token.Issuer
	users  repository.UserRepository
}

func NewAuth(tokens *token.Issuer, users repository.UserRepository) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// RequireRoles validates the Authorization header, loads the signing
// user, and rejects roles outside the allow-set. The resolved user is
// attached to the request context for handlers.
func (a *Auth) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthenticated(c, "Authorization header required.")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthenticated(c, "Bearer token required.")
			return
		}

		userID, err := a.tokens.Verify(parts[1])
		if err != nil {
			unauthenticated(c, "Invalid or expired token.")
			return
		}

		// Tokens are stateless: a deleted account is caught here, not
		// by any revocation list.
		user, err := a.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			unauthenticated(c, "Invalid or expired token.")
			return
		}

		if _, ok := allowed[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":             "forbidden",
				"error_description": "This role cannot access the resource.",
			})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by RequireRoles.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func unauthenticated(c *gin.Context, description string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":             "invalid_token",
		"error_description": description,
	})
}
