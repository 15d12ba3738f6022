package model

import "errors"

var (
	// ErrNotFound indicates the referenced resource does not exist. This
	// includes a well-formed assignee id that resolves to no account.
	ErrNotFound = errors.New("resource not found")
	// ErrUsernameTaken indicates a registration conflict.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrPermissionDenied indicates an authenticated caller lacking
	// permission for the specific resource.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInvalidToken covers malformed, badly signed, expired and revoked
	// tokens. Callers are never told which.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials indicates a failed username/password login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
