package channel

import (
	"errors"
	"fmt"
)

// OpenError indicates the serial port could not be acquired.
type OpenError struct {
	Port     string
	BaudRate int
	Err      error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open serial port %s at %d baud: %v", e.Port, e.BaudRate, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// IsOpenError returns true if err is or wraps an OpenError.
func IsOpenError(err error) bool {
	var oe *OpenError
	return errors.As(err, &oe)
}
