package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbiddenLocation = errors.New("location not assigned to this manager")
)
