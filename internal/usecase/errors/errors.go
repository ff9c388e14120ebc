package errors

import "errors"

// Record errors
var (
	ErrNilRecord = errors.New("record cannot be nil")
)
