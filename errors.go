package gobloom

import (
	"github.com/pkg/errors"
)

var (
	// ErrValidation is returned for malformed or missing construction and
	// deserialization fields.
	ErrValidation = errors.New("gobloom: validation error")
	// ErrArithmetic is returned when sizing inputs are degenerate.
	ErrArithmetic = errors.New("gobloom: arithmetic error")

	ErrLevelNotFound  = errors.New("gobloom: level not found")
	ErrFilterNotFound = errors.New("gobloom: filter not found")
)

func validationErrorf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrValidation, format, args...)
}

func arithmeticErrorf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrArithmetic, format, args...)
}
