package calendar

import "fmt"

// InvalidDateError reports a start instant that could not be parsed as a UTC
// ISO-8601 instant.
type InvalidDateError struct {
	Code    string
	Message string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidDateError(value string) error {
	return &InvalidDateError{
		Code:    "InvalidDate",
		Message: fmt.Sprintf("cannot parse %q as a UTC ISO-8601 instant", value),
	}
}
