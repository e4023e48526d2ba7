package apperror

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned on login failure. The message is
// deliberately generic so callers cannot tell which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoSession is returned when an operation requires an active session.
var ErrNoSession = errors.New("no active session")

// ValidationError reports malformed user input (registration, profile edit,
// settings). These are expected, recoverable, and shown to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageError wraps a key-value store read/write failure. Unlike validation
// and auth errors these are unexpected: operations abort with the error
// instead of returning empty data that would mask data loss.
type StorageError struct {
	Op  string // "get", "set", "remove", "clear"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Storage(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
