package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("gateway rejected request")
	ErrNotFound            = errors.New("resource not found on gateway")
	ErrAccessDenied        = errors.New("gateway denied access")
	ErrServerUnavailable   = errors.New("gateway unavailable")
	ErrInternalServerError = errors.New("gateway internal error")
)
