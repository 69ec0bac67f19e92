package middleware

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetLoggerFromContext returns the trace-aware logger stored by
// TraceLoggerMiddleware, or fallback when the middleware did not run.
func GetLoggerFromContext(c *fiber.Ctx, fallback *zap.Logger) *zap.Logger {
	if logger, ok := c.Locals(loggerLocalsKey).(*zap.Logger); ok {
		return logger
	}

	return fallback
}
