package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/ferdian3456/jobboard/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// PrometheusMiddleware records request counts and latencies labelled by the
// matched route pattern rather than the raw path.
func PrometheusMiddleware(metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start).Seconds()
		statusCode := c.Response().StatusCode()

		if err != nil {
			var e *fiber.Error
			if errors.As(err, &e) {
				statusCode = e.Code
			} else {
				statusCode = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		path := c.Route().Path
		statusStr := strconv.Itoa(statusCode)

		metrics.HTTPRequestTotal.WithLabelValues(method, path, statusStr).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, statusStr).Observe(duration)

		return err
	}
}
