// Package errs provides standardized error types for the parcel delivery core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// The package covers the error taxonomy of the order core:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: a referenced object does not exist
//   - InvalidTransitionError: an order status change violates the state machine
//   - ConcurrencyConflictError: an order was mutated between read and write
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// Repository failures are deliberately not wrapped here: the core treats
// persistence errors as opaque and surfaces them unchanged.
package errs
