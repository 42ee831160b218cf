package entity

import (
	"errors"
)

var (
	ErrDataNotFound        = errors.New("data not found")
	ErrInvalidData         = errors.New("invalid data")
	ErrUnprocessableEntity = errors.New("business rule violated")
	ErrConflictingData     = errors.New("data conflicts with existing data in unique column")
	ErrStatusTransition    = errors.New("status transition not allowed")
	ErrConfigPathNotSet    = errors.New("CONFIG_PATH not set and -config flag not provided")
)
