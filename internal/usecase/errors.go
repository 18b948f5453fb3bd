package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrFeedUnavailable       = errors.New("live feed unavailable")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
