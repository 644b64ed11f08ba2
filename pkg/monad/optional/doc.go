// Package optional provides Optional[T], a value that is either Present or
// Absent. Bind on Absent returns Absent without calling the function, so a
// chain of lookups needs no nil checks between steps.
//
// Highlights:
// - Of/Present/Absent/Empty: construct an Optional
// - FromPtr/FromNillable/FromOK: adapt Go's usual "maybe" shapes
// - Bind (method and function): sequence the next lookup
// - Map/Filter/Or: transform, narrow or replace
// - Get/OrElse/OrElseGet/MustGet/Fold: leave the Optional
//
// A Present value may itself be a zero or nil value; it is still Present.
package optional
