package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/core/port"
)

const identityKey = "x-identity"

// Identity is the resolved claim set attached to authenticated requests.
type Identity struct {
	Email string
}

// BearerAuth validates the Authorization header and attaches the caller's
// identity to the request. A token that fails verification maps to a 500,
// not a 401; existing clients depend on that status.
func BearerAuth(issuer port.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			helper.SendUnauthorized(c, "Authorization header missing or malformed")
			c.Abort()
			return
		}

		token := header[len("Bearer "):]

		if token == "" {
			helper.SendUnauthorized(c, "Token not provided")
			c.Abort()
			return
		}

		email, err := issuer.VerifyToken(token)

		if err != nil {
			slog.Error("Error verifying token", "error", err)
			helper.SendInternalError(c, "Internal server error during authentication")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{Email: email})
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by BearerAuth.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(identityKey)

	if !ok {
		return Identity{}, false
	}

	identity, ok := value.(Identity)

	return identity, ok
}
