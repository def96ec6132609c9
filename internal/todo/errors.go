package todo

import "errors"

// Sentinel errors for to-do operations. Both leave the board unchanged.
var (
	ErrEmptyText     = errors.New("task text is empty")
	ErrNoSelection   = errors.New("no task selected")
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidRef    = errors.New("invalid task reference")
)
