package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// httpObserver lo implementa *metrics.Recorder.
type httpObserver interface {
	ObserveHTTP(method, route string, status int, seconds float64)
}

// MetricsMiddleware registra método, ruta (patrón, no la URL concreta), status y duración.
func MetricsMiddleware(obs httpObserver, skipPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == skipPath {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		obs.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start).Seconds())
		return err
	}
}
