package util

import (
	"errors"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func ReadRequestBody(ctx *fiber.Ctx, result interface{}) error {
	err := ctx.BodyParser(result)
	if err != nil {
		return &model.ValidationError{
			Code:    constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE,
			Message: constant.ERR_INVALID_REQUEST_BODY_MESSAGE,
		}
	}
	return nil
}

func SendSuccessResponseWithMessage(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  true,
		"message": message,
	})
}

func SendSuccessResponseWithData(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": true,
		"data":   data,
	})
}

func SendSuccessResponseCreated(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

func SendSuccessResponseWithMessageAndData(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  true,
		"message": message,
		"data":    data,
	})
}

func SendErrorResponse(ctx *fiber.Ctx, validationErr *model.ValidationError) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  false,
		"message": validationErr.Message,
		"errors":  validationErr.FieldErrors(),
	})
}

func SendErrorResponseBadRequest(ctx *fiber.Ctx, validationErr *model.ValidationError) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": validationErr.Message,
	})
}

func SendErrorResponseNotFound(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}

func SendErrorResponseUnauthorized(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}

func SendErrorResponseConflict(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}

func SendErrorResponseInternalServer(ctx *fiber.Ctx, log *zap.Logger, error error) error {
	return SendErrorResponseInternalServerWithMessage(ctx, log, error, constant.ERR_INTENRAL_SERVER_ERROR_MESSAGE)
}

func SendErrorResponseInternalServerWithMessage(ctx *fiber.Ctx, log *zap.Logger, error error, message string) error {
	log.Error("internal server error occured", zap.Error(error))
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  false,
		"message": message,
	})
}

// SendErrorResponseFromError maps usecase errors onto the JSON envelope.
func SendErrorResponseFromError(ctx *fiber.Ctx, log *zap.Logger, err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		switch validationErr.Code {
		case constant.ERR_NOT_FOUND_ERROR:
			return SendErrorResponseNotFound(ctx, validationErr.Message)
		case constant.ERR_UNATHORIZED_ERROR:
			return SendErrorResponseUnauthorized(ctx, validationErr.Message)
		case constant.ERR_INVALID_REQUEST_BODY_ERROR_CODE:
			return SendErrorResponseBadRequest(ctx, validationErr)
		default:
			return SendErrorResponse(ctx, validationErr)
		}
	}

	if model.IsErrorKind(err, model.ErrKindConflict) {
		return SendErrorResponseConflict(ctx, constant.ERR_CONFLICT_MESSAGE)
	}

	return SendErrorResponseInternalServer(ctx, log, err)
}
