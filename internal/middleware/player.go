package middleware

import (
	"strings"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// EnsurePlayerID stores the caller's player ID in Locals("playerID"). The ID
// comes from the X-Player-ID header, or the playerId query for browsers that
// cannot set headers on a websocket handshake.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals("playerID") != nil {
			return c.Next()
		}

		playerID := strings.TrimSpace(c.Get("X-Player-ID"))
		if playerID == "" {
			playerID = strings.TrimSpace(c.Query("playerId"))
		}
		if playerID == "" {
			log.WithField("path", c.Path()).Debug("request without player id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		// header and query values alias the pooled request buffer
		c.Locals("playerID", utils.CopyString(playerID))
		return c.Next()
	}
}
