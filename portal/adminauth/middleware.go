package adminauth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const localsUsernameKey = "admin_username"

// Middleware validates admin session tokens from the Authorization header.
func Middleware(tokens *TokenService) fiber.Handler {
	return middleware(tokens, false)
}

// MiddlewareAllowQueryToken additionally accepts the legacy ?token= query
// parameter used by direct download links.
func MiddlewareAllowQueryToken(tokens *TokenService) fiber.Handler {
	return middleware(tokens, true)
}

func middleware(tokens *TokenService, allowQuery bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Authorization")
		if raw == "" && allowQuery {
			raw = c.Query("token")
		}
		if raw == "" {
			return ErrMissingToken()
		}

		// The header may carry a bare token or the "Bearer <token>" form.
		token := strings.TrimPrefix(raw, "Bearer ")

		claims, err := tokens.Validate(token)
		if err != nil {
			return err
		}

		c.Locals(localsUsernameKey, claims.Username)
		return c.Next()
	}
}

// GetAdminUsername extracts the authenticated admin username from context.
func GetAdminUsername(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals(localsUsernameKey).(string)
	return username, ok
}
