package holiday

import "fmt"

// SourceError reports that the remote holiday catalog could not be fetched.
// Callers get no stale or fabricated fallback set.
type SourceError struct {
	Code    string
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(msg string, err error) error {
	return &SourceError{
		Code:    "HolidaySourceUnavailable",
		Message: msg,
		Err:     err,
	}
}
