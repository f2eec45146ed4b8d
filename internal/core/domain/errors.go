package domain

import "errors"

// Error kinds. Every error returned by a service either is one of these or
// unwraps to one of them; anything else is treated as internal.
var (
	ErrUnauthenticated = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Error is a domain error carrying the message shown to API clients.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	ErrAdminOnly        = newError(ErrForbidden, "Admin access only")
	ErrSuperadminOnly   = newError(ErrForbidden, "SuperAdmin access only")
	ErrNotOwner         = newError(ErrForbidden, "You can only modify your own resources")
	ErrProtectedAccount = newError(ErrForbidden, "Admin / Superadmin account cannot be deleted")
	ErrSuperadminLocked = newError(ErrForbidden, "Superadmin role cannot be changed")

	ErrRoleRequired       = newError(ErrBadRequest, "Role is required")
	ErrInvalidRole        = newError(ErrBadRequest, "Invalid role")
	ErrContactRequired    = newError(ErrBadRequest, "Email or phone is required")
	ErrInvalidVisitStatus = newError(ErrBadRequest, "Invalid visit status")

	ErrInvalidCredentials = newError(ErrUnauthenticated, "Invalid credentials")

	ErrUserNotFound    = newError(ErrNotFound, "User not found")
	ErrListingNotFound = newError(ErrNotFound, "Listing not found")
	ErrVisitNotFound   = newError(ErrNotFound, "Visit request not found")
	ErrAlertNotFound   = newError(ErrNotFound, "Alert not found")

	ErrUserExists          = newError(ErrConflict, "User already exists")
	ErrVisitAlreadyDecided = newError(ErrConflict, "Visit request has already been decided")
)
