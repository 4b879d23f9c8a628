package envvar

import (
	"fmt"

	"github.com/pkg/errors"
)

// Conversion targets reported by InvalidValueError
const (
	TargetInteger = "integer"
	TargetBoolean = "boolean"
)

// MissingError is returned when a variable is not defined at lookup time
type MissingError struct {
	Name string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("environment variable <%s> is missing", e.Name)
}

// InvalidValueError is returned when a defined variable cannot be converted to the requested type
type InvalidValueError struct {
	Value  string
	Name   string
	Target string

	cause error
}

func (e *InvalidValueError) Error() string {
	msg := fmt.Sprintf("the value <%s> for environment variable <%s> is invalid for conversion to <%s>", e.Value, e.Name, e.Target)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying parse error, if any
func (e *InvalidValueError) Unwrap() error {
	return e.cause
}

func missing(name string) error {
	return errors.WithStack(&MissingError{Name: name})
}

func invalid(v Variable, target string, cause error) error {
	return errors.WithStack(&InvalidValueError{
		Value:  v.raw,
		Name:   v.name,
		Target: target,
		cause:  cause,
	})
}
