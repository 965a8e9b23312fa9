// Package exitcode defines exit codes for the CLI front end.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, out-of-range task number).
	UserError = 1

	// StorageError indicates the state file could not be read or written.
	StorageError = 2

	// InternalError indicates an unexpected runtime failure.
	InternalError = 3
)
