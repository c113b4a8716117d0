package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/auth"
	"github.com/example/maya-portal/internal/config"
)

const identityContextKey = "currentIdentity"

// AuthMiddleware validates bearer tokens and loads the authenticated
// identity into the request context. All failures map to 401; expired,
// bad-signature and malformed tokens share one message.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.AuthenticateHeader(c.Get(fiber.HeaderAuthorization), cfg.JWTSecret, time.Now())
		if err != nil {
			if errors.Is(err, auth.ErrMissingToken) {
				return fiber.NewError(fiber.StatusUnauthorized, "missing authorization header")
			}
			if errors.Is(err, auth.ErrMalformedHeader) {
				return fiber.NewError(fiber.StatusUnauthorized, "invalid authorization header")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(identityContextKey, identity)
		return c.Next()
	}
}

// GetCurrentUser extracts the authenticated identity from context.
func GetCurrentUser(c *fiber.Ctx) (auth.Identity, bool) {
	value := c.Locals(identityContextKey)
	if value == nil {
		return auth.Identity{}, false
	}

	if identity, ok := value.(auth.Identity); ok {
		return identity, true
	}

	return auth.Identity{}, false
}
