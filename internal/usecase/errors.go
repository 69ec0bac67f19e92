package usecase

import (
	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"
)

func notFoundError(message string, param string) error {
	return &model.ValidationError{
		Code:    constant.ERR_NOT_FOUND_ERROR,
		Message: message,
		Param:   param,
	}
}

func validationError(message string, param string) error {
	return &model.ValidationError{
		Code:    constant.ERR_VALIDATION_CODE,
		Message: message,
		Param:   param,
	}
}
