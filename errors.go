package mongostrict

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mongostrict/pkg/naming"
)

// Operation names the kind of work that failed.
type Operation string

const (
	OpFind       Operation = "find"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpInsert     Operation = "insert"
	OpCollection Operation = "collection"
	OpIndex      Operation = "index"
)

var (
	ErrNotConnected       = errors.New("mongodb connection not initialized")
	ErrAlreadyConnected   = errors.New("client has already been initialized")
	ErrEmptyDatabaseName  = errors.New("database name is required")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNotAcknowledged    = errors.New("write was not acknowledged")
	ErrInvalidID          = errors.New("invalid document id")
	ErrEmptyUpdate        = errors.New("update has no values")
	ErrInvalidUpdate      = errors.New("invalid update document")
	ErrInvalidIndex       = errors.New("invalid index definition")

	// ErrEmptyCollectionName is returned when neither the collection option
	// nor the schema name contain a usable word.
	ErrEmptyCollectionName = naming.ErrEmptyName
)

// OperationError is returned by every Model method. Err holds the cause:
// a driver error, validator.ValidationErrors, one of the package sentinels
// or a nested OperationError for collection and index bootstrap failures.
type OperationError struct {
	Op  Operation
	Err error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed at running operation: %s", e.Op)
	}
	return fmt.Sprintf("failed at running operation: %s: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// IsOperation reports whether any OperationError in err's chain is for op.
func IsOperation(err error, op Operation) bool {
	for {
		var oe *OperationError
		if !errors.As(err, &oe) {
			return false
		}
		if oe.Op == op {
			return true
		}
		err = oe.Err
	}
}

// ErrorOperation returns the outermost operation of err, or "" when err is
// not an OperationError.
func ErrorOperation(err error) Operation {
	var oe *OperationError
	if errors.As(err, &oe) {
		return oe.Op
	}
	return ""
}

func wrapOp(op Operation, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Op: op, Err: err}
}
