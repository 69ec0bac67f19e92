package exception

import (
	"errors"
	"fmt"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func Recovery(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			var errMsg string
			switch v := r.(type) {
			case error:
				errMsg = v.Error()
			case string:
				errMsg = v
			default:
				errMsg = fmt.Sprintf("%v", v)
			}

			middleware.GetLoggerFromContext(c, log).Error("panic occurred and recovered",
				zap.String("error", errMsg),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)

			_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE,
			})
		}()

		return c.Next()
	}
}

// ErrorHandler renders errors that escape the handlers, such as unknown
// routes or oversized bodies, in the JSON envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return ctx.Status(code).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}
