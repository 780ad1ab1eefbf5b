package core

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("record store unavailable")
)
