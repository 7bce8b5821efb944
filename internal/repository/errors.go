package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gems2004/Stocky-sub001/pkg/apperror"
)

// translate maps gorm errors onto the API error taxonomy so raw driver text
// never leaves the repository layer.
func translate(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(what + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Conflict(what + " already exists").WithDetails(err.Error())
	default:
		return apperror.Internal("database error").WithDetails(err.Error())
	}
}
