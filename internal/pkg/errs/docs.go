// Package errs provides standardized error types for the bakeshop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation (including illegal
//     order status transitions, which carry the rejected transition as cause)
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct with fields for error details,
// constructors with and without cause, an Error() method for formatting,
// and an Unwrap() method so errors.Is can classify errors by kind.
package errs
