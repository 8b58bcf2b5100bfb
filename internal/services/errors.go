package services

import "errors"

// Sentinel errors surfaced by the project service. Handlers map
// these onto HTTP statuses with errors.Is.
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found or does not belong to this client")
	ErrMembershipNotFound = errors.New("user is not assigned to this project")
	ErrNoAccess           = errors.New("you do not have access to this project")
	ErrOwnerRequired      = errors.New("only project owners or admins can perform this action")
	ErrAlreadyAssigned    = errors.New("user is already assigned to this project")
	ErrInvalidRole        = errors.New("role must be owner, developer, or viewer")
)
