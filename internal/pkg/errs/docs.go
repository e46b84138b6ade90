// Package errs holds the generic error kinds shared by the domain, the
// repositories and the HTTP boundary.
//
// Kinds:
//   - ValueIsRequiredError: a mandatory value is empty
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value falls outside [Min, Max]
//   - ObjectNotFoundError: no row exists for an id
//   - ObjectAlreadyExistsError: a natural key such as a tax id is taken
//
// Every kind is a struct with an optional Cause, built by NewX or NewXWithCause,
// and unwraps to its sentinel (ErrValueIsRequired, ErrObjectNotFound, ...) so
// callers classify errors with errors.Is. The HTTP layer maps the sentinels to
// status codes: not found to 404, already exists to 409, the value kinds to 400.
package errs
