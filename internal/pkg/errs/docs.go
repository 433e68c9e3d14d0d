// Package errs provides standardized error types for the order processing
// application. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package includes two groups of error types:
//   - Validation errors: ValueIsInvalidError
//   - Collaborator failures: StoreError, ServiceCommunicationError, ExportError
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrStore)
//   - A struct type with fields for error details
//   - A constructor taking the parameter or operation and the cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Collaborator failures are what the processing pipeline classifies with
// errors.Is to turn a failed call into an order status instead of aborting
// the batch. Adapters must wrap their failures into these types.
package errs
