// Package errs provides the typed errors shared by the routing and dispatch code.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value breaks a domain rule
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed range
//   - ObjectNotFoundError: a hub, courier or shipment lookup matched nothing
//
// Each type follows the same pattern: a sentinel error variable, a struct carrying
// the details, constructors with and without a cause, and Unwrap returning the
// sentinel so errors.Is works across package boundaries.
package errs
