package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrUnknownPage    = errors.New("unknown page")
	ErrNotLoaded      = errors.New("collection not loaded")
	ErrLoadFailed     = errors.New("all sources failed")
	ErrUnknownControl = errors.New("unknown control")
)
