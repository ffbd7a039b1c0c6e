package client

import (
	"errors"
	"fmt"
)

// Error kinds for client operations. Match them with errors.Is.
var (
	// ErrConnection is returned when the backend handle cannot be
	// established.
	ErrConnection = errors.New("database connection failed")

	// ErrStatement is returned when the backend rejects a statement,
	// for example for an unknown table or column.
	ErrStatement = errors.New("statement rejected")

	// ErrInvalidArgument is returned for bad caller input such as an
	// empty table name or a non-positive batch size.
	ErrInvalidArgument = errors.New("invalid argument")
)

// OpError wraps a failure with the operation and table it occurred on.
type OpError struct {
	Op    string
	Table string
	Kind  error
	Cause error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s on %s: %v", e.Op, e.Table, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Cause
}

// Is reports whether the error matches one of the error kinds.
func (e *OpError) Is(target error) bool {
	return target == e.Kind
}

func opError(op, table string, kind, cause error) *OpError {
	return &OpError{Op: op, Table: table, Kind: kind, Cause: cause}
}
