package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const UserAgentContextKey = "user_agent"

// RequestInfo records the caller's user agent for session bookkeeping.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if ua := c.Get("User-Agent"); ua != "" {
			c.Locals(UserAgentContextKey, ua)
		}
		return c.Next()
	}
}

func GetUserAgent(c *fiber.Ctx) *string {
	ua, ok := c.Locals(UserAgentContextKey).(string)
	if !ok || ua == "" {
		return nil
	}
	return &ua
}
