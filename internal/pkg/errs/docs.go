// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic error types:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For when an identifier is already taken
//
// and the ordering failure taxonomy:
//   - InvalidCartError: empty cart or malformed line item
//   - InvalidTicketError: kitchen ticket cannot be dispatched
//   - InvalidStatusError: status outside the lifecycle enum
//   - InvalidAssignmentError: blank staff name
//   - StorageError: unexpected persistence failure
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
package errs
