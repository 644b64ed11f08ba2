// Package identity provides Identity[T], the simplest monad: it holds one value
// and Bind hands that value straight to the next function.
//
// - Of: lift a value
// - Bind (method and function): sequence the next computation
// - Map: transform the value
// - Join: flatten a nested Identity
package identity
