package repository

import (
	"errors"

	"github.com/ferdian3456/jobboard/internal/constant"
	"github.com/ferdian3456/jobboard/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// duplicateError turns a unique constraint violation into the same validation
// error the pre-insert check reports. Other errors pass through.
func duplicateError(err error, message string, param string) error {
	if !isUniqueViolation(err) {
		return err
	}

	return &model.ValidationError{
		Code:    constant.ERR_VALIDATION_CODE,
		Message: message,
		Param:   param,
	}
}
