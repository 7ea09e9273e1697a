package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/solaceapp/solace-backend/internal/ratelimit"
)

// ClientIP resolves the caller identity for rate limiting. The first entry of
// X-Forwarded-For wins when present so clients behind a proxy are bucketed
// individually.
func ClientIP(c *fiber.Ctx) string {
	if fwd := c.Get(fiber.HeaderXForwardedFor); fwd != "" {
		if ip, _, found := strings.Cut(fwd, ","); found || ip != "" {
			return strings.TrimSpace(ip)
		}
	}
	return c.IP()
}

// RateLimit admits or rejects requests against the given limiter keyed by
// client IP.
func RateLimit(l *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, remaining := l.Admit(ClientIP(c))
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests. Please try again later.",
				"retry_after": int(l.Window().Seconds()),
			})
		}
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		return c.Next()
	}
}
