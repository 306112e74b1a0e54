package shape

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownType     = errors.New("unknown shape type")
	ErrMissingPosition = errors.New("missing position")
	ErrMalformed       = errors.New("malformed field")
)

// RecordError reports a record the registry refused to build a shape from.
type RecordError struct {
	Code  int
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("shape record (type %d): %s: %v", e.Code, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
