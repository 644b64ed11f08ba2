// Package laws checks the monad laws for any type that provides Of and Bind.
//
// - Checker: holds Of, Bind and Equal for one variant
// - ForMethod: builds a Checker from a variant's Bind method
// - LeftIdentity/RightIdentity/Associativity: evaluate one law on one input
// - Verify: run every law over sample values, monads and functions, reporting
//   violations through a testify TestingT
// - Strings: random string samples
package laws
