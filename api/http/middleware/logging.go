// Package middleware holds fiber middleware shared by all routes.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/hrboard/pkg/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	LocalsRequestID = "requestId"
)

// RequestLogger tags every request with an id and logs it once it is served.
// An incoming X-Request-ID is kept so ids can be traced across services.
func RequestLogger(log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)

		if err := c.Next(); err != nil {
			// let the app's error handler write the status before we log it
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String(logger.FieldRequestID, id),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("http request", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
		return nil
	}
}
