// Package monad defines the contract shared by the monadic wrappers in its
// subpackages and a few helpers they have in common.
//
// Variants:
// - identity: wraps a value, Bind always applies the function
// - optional: Present/Absent, Bind short-circuits on Absent
// - result: Ok/Err, Bind short-circuits on Err and keeps the error as is
//
// Every variant provides Of to lift a plain value and Bind to sequence a
// value-producing function. The laws subpackage checks that a variant obeys
// the monad laws.
package monad
