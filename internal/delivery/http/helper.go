package http

import (
	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/delivery/http/middleware"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/gofiber/fiber/v2"
)

func authContext(ctx *fiber.Ctx) (model.AuthContext, error) {
	auth, ok := middleware.GetAuthContext(ctx)
	if !ok {
		return auth, &model.ValidationError{
			Code:    constant.ERR_UNATHORIZED_ERROR,
			Message: "Unauthenticated.",
			Param:   "accessToken",
		}
	}

	return auth, nil
}

func pathId(ctx *fiber.Ctx, param string, message string) (int64, error) {
	id, err := ctx.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, &model.ValidationError{
			Code:    constant.ERR_NOT_FOUND_ERROR,
			Message: message,
			Param:   param,
		}
	}

	return int64(id), nil
}
