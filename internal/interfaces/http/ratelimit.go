package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/config"
)

// Mensaje observable del limitador; no cambiarlo sin versionar la API.
const rateLimitMessage = "Too many requests, please try again after 3 minutes!"

// NewRateLimiter construye el middleware de ventana fija: cfg.Max peticiones por
// cfg.Window, contadas por cliente y por ruta (la clave incluye el patrón de la
// ruta, así dos rutas limitadas no comparten cupo).
func NewRateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|" + c.Route().Path
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: rateLimitMessage,
			})
		},
	})
}
