package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const loggerLocalsKey = "logger"

// TraceLoggerMiddleware stores a logger carrying trace_id and span_id in the
// request locals and writes one access log line per request.
func TraceLoggerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		spanContext := trace.SpanFromContext(c.UserContext()).SpanContext()

		traceLogger := logger
		if spanContext.IsValid() {
			traceLogger = logger.With(
				zap.String("trace_id", spanContext.TraceID().String()),
				zap.String("span_id", spanContext.SpanID().String()),
			)
		}

		c.Locals(loggerLocalsKey, traceLogger)

		err := c.Next()

		traceLogger.Info("request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)

		return err
	}
}
