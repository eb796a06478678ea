package domain

import "errors"

var (
	ErrPermissionDenied     = errors.New("permission denied: administrator role required")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrEmailTaken           = errors.New("email already in use")
	ErrMemberHasAssignments = errors.New("member has lottery assignments")
	ErrInvalidTransition    = errors.New("draw status cannot move backwards")
	ErrNotAMember           = errors.New("email does not belong to any member of the association")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
