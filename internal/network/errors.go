package network

import "errors"

var (
	ErrBadRequest      = errors.New("bad request")
	ErrUnauthorized    = errors.New("installation unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInternal        = errors.New("network internal error")
	ErrBadGateway      = errors.New("bad gateway")
	ErrAddressMismatch = errors.New("token subject does not match identity address")
)
