package apperror

import (
	"errors"
	"fmt"
)

// Every failure in this program falls into one of these categories.
// They are sentinel errors — package-level values that callers check
// with errors.Is(). All of them are fatal at the point they occur:
// nothing is retried, the process reports the error and exits non-zero.
//
// Note what is NOT here: "snippet not found". A missing name on read or
// delete is a normal outcome reported to the user, never an error.
var (
	ErrConfig       = errors.New("configuration error")
	ErrStorageInit  = errors.New("storage init error")
	ErrStorageRead  = errors.New("storage read error")
	ErrStorageWrite = errors.New("storage write error")
	ErrFetch        = errors.New("fetch error")
	ErrStdin        = errors.New("stdin read error")
)

type AppError struct {
	Err     error  // sentinel identifying the category
	Cause   error  // underlying failure, may be nil
	Message string // Human-readable error message
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns both the category sentinel and the underlying cause,
// so errors.Is() matches either. Go 1.20+ supports multi-error unwrap
// via the `Unwrap() []error` form.
func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// Config reports a bad or missing configuration value.
func Config(message string) *AppError {
	return &AppError{
		Err:     ErrConfig,
		Message: message,
	}
}

// StorageInit reports a backend that could not be constructed.
func StorageInit(location string, cause error) *AppError {
	return &AppError{
		Err:     ErrStorageInit,
		Cause:   cause,
		Message: fmt.Sprintf("cannot initialize storage at %q", location),
	}
}

// StorageRead reports a store that exists but cannot be loaded.
func StorageRead(location string, cause error) *AppError {
	return &AppError{
		Err:     ErrStorageRead,
		Cause:   cause,
		Message: fmt.Sprintf("cannot read storage at %q", location),
	}
}

// StorageWrite reports a save that could not be completed.
func StorageWrite(location string, cause error) *AppError {
	return &AppError{
		Err:     ErrStorageWrite,
		Cause:   cause,
		Message: fmt.Sprintf("cannot write storage at %q", location),
	}
}

// Fetch reports a failed snippet download.
func Fetch(url string, cause error) *AppError {
	return &AppError{
		Err:     ErrFetch,
		Cause:   cause,
		Message: fmt.Sprintf("cannot fetch %q", url),
	}
}

// Stdin reports a failure reading snippet content from standard input.
func Stdin(cause error) *AppError {
	return &AppError{
		Err:     ErrStdin,
		Cause:   cause,
		Message: "cannot read snippet content from stdin",
	}
}
