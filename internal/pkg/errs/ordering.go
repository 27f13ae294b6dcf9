package errs

import (
	"errors"
	"fmt"
)

// Ordering failure taxonomy. Each kind maps to one HTTP status at the transport edge.
var (
	ErrInvalidCart       = errors.New("invalid cart")
	ErrInvalidTicket     = errors.New("invalid ticket")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidAssignment = errors.New("invalid assignment")
	ErrStorage           = errors.New("storage failure")
)

// InvalidCartError is returned when a cart is empty or carries a malformed line item.
type InvalidCartError struct {
	Reason string
	Cause  error
}

func NewInvalidCartError(reason string) *InvalidCartError {
	return &InvalidCartError{Reason: reason}
}

func NewInvalidCartErrorWithCause(reason string, cause error) *InvalidCartError {
	return &InvalidCartError{Reason: reason, Cause: cause}
}

func (e *InvalidCartError) Error() string {
	return format(ErrInvalidCart, e.Reason, e.Cause)
}

func (e *InvalidCartError) Unwrap() error {
	return ErrInvalidCart
}

// InvalidTicketError is returned when a kitchen ticket cannot be dispatched.
type InvalidTicketError struct {
	Reason string
	Cause  error
}

func NewInvalidTicketError(reason string) *InvalidTicketError {
	return &InvalidTicketError{Reason: reason}
}

func NewInvalidTicketErrorWithCause(reason string, cause error) *InvalidTicketError {
	return &InvalidTicketError{Reason: reason, Cause: cause}
}

func (e *InvalidTicketError) Error() string {
	return format(ErrInvalidTicket, e.Reason, e.Cause)
}

func (e *InvalidTicketError) Unwrap() error {
	return ErrInvalidTicket
}

// InvalidStatusError is returned for a status outside the lifecycle enum.
type InvalidStatusError struct {
	Value string
	Cause error
}

func NewInvalidStatusError(value string) *InvalidStatusError {
	return &InvalidStatusError{Value: value}
}

func NewInvalidStatusErrorWithCause(value string, cause error) *InvalidStatusError {
	return &InvalidStatusError{Value: value, Cause: cause}
}

func (e *InvalidStatusError) Error() string {
	return format(ErrInvalidStatus, fmt.Sprintf("%q", e.Value), e.Cause)
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// InvalidAssignmentError is returned when a ticket is assigned to a blank staff name.
type InvalidAssignmentError struct {
	Reason string
	Cause  error
}

func NewInvalidAssignmentError(reason string) *InvalidAssignmentError {
	return &InvalidAssignmentError{Reason: reason}
}

func NewInvalidAssignmentErrorWithCause(reason string, cause error) *InvalidAssignmentError {
	return &InvalidAssignmentError{Reason: reason, Cause: cause}
}

func (e *InvalidAssignmentError) Error() string {
	return format(ErrInvalidAssignment, e.Reason, e.Cause)
}

func (e *InvalidAssignmentError) Unwrap() error {
	return ErrInvalidAssignment
}

// StorageError wraps unexpected failures of a persistence backend.
type StorageError struct {
	Operation string
	Cause     error
}

func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return format(ErrStorage, e.Operation, e.Cause)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

func format(kind error, detail string, cause error) string {
	if cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", kind, detail, cause)
	}
	return fmt.Sprintf("%s: %s", kind, detail)
}
