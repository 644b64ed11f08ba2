// Package result provides Result[T, E], a value that is either Ok or Err.
// Bind on Err returns the very same error without calling the function, so a
// fallible pipeline propagates failure through return values instead of
// branching at every step.
//
// Highlights:
// - Of/Ok/Err/FromPair: construct a Result (Fallible[T] is Result[T, error])
// - Bind (method and function): sequence the next fallible step
// - Map/MapErr/Try: transform the value, the error, or call a (U, error) func
// - Validate/ValidateAll: fail on invalid input, optionally collecting errors
// - Tee/TeeErr: side effects on one track only
// - Recover/OrElse: caller-layered recovery from Err
// - FirstOk/All: pick the first success, or require all of them
// - Fold/Unwrap/ValueOr: leave the Result
// - FromOptional/ToOptional: convert to and from optional.Optional
package result
