package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStorage              = errors.New("storage failure")
	ErrValidation           = errors.New("invalid input")
	ErrInvalidTransportType = errors.New("invalid transport type")
	ErrNegativeValue        = errors.New("value must be non-negative")
	ErrAmountOverflow       = errors.New("amount overflows")
)

// StorageError reports a failed operation against the expense table.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// ValidationError reports malformed or out-of-domain tool input.
// Valid lists the accepted values when the input must come from a fixed set.
type ValidationError struct {
	Field string
	Err   error
	Valid []string
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Field, e.Err)
	if len(e.Valid) > 0 {
		msg += " (valid options: " + strings.Join(e.Valid, ", ") + ")"
	}
	return msg
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
