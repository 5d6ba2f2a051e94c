package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownOperation is returned when a CLI or projection request names
	// an operation type that has no registered check.
	ErrUnknownOperation = zerr.New("unknown operation type")

	// ErrUnknownStrategy is returned when a cleanup request names a strategy
	// that does not exist.
	ErrUnknownStrategy = zerr.New("unknown cleanup strategy")

	// ErrUnknownView is returned when a metadata projection names a view kind
	// that does not exist.
	ErrUnknownView = zerr.New("unknown metadata view")

	// ErrCheckFailed is returned by the CLI layer when a check ran but
	// reported failure, so the process can exit non-zero without logging a
	// stack trace.
	ErrCheckFailed = zerr.New("check failed")
)
