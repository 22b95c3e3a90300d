package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("token rejected as expired")
	ErrUnprocessable       = errors.New("token could not be processed")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("hostname conflict")
	ErrInternalServerError = errors.New("internal server error")
)
