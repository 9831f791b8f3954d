package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator was not wired.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidIndex indicates a position outside the bounds of the record store.
	// It signals a programming error: the UI should never produce one.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation failed")

	// Table session errors.

	// ErrNoPendingAction indicates a confirmation arrived with nothing to confirm.
	ErrNoPendingAction = errors.New("no pending action")

	// ErrNotEditing indicates an edit-buffer operation outside add/edit mode.
	ErrNotEditing = errors.New("no record is being edited")

	// ErrBusy indicates an intent that is not allowed while a modal is open.
	ErrBusy = errors.New("another action is in progress")
)
