package errs

import (
	"errors"
	"fmt"
)

var ErrObjectAlreadyExists = errors.New("object already exists")

// ObjectAlreadyExistsError reports a uniqueness conflict on a natural key,
// e.g. a second partner registered with a tax id that is already taken.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %v (cause: %v)", ErrObjectAlreadyExists, e.ParamName, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %v", ErrObjectAlreadyExists, e.ParamName, e.Value)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}
