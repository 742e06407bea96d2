// Package apperr defines the error kinds surfaced by gated and bulk
// operations. Callers wrap them with fmt.Errorf("...: %w", err) and the
// HTTP layer maps them to status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrUnauthenticated means no caller identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrPermissionDenied means the caller exists but lacks the required
	// privilege.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidArgument means the request was malformed or a required
	// confirmation token did not match.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflict means the operation is already running elsewhere.
	ErrConflict = errors.New("operation already in progress")
)
