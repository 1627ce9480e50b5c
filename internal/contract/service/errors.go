package service

import "errors"

var (
	// ErrUnavailable is returned when an operation needs a component that is not configured.
	ErrUnavailable = errors.New("not configured")
	// ErrInvalidArgument is returned for malformed requests.
	ErrInvalidArgument = errors.New("invalid argument")
)
