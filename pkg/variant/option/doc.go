// Package option provides Option[T], a two-case variant for explicit
// absence of a value: Some carries a value, None carries nothing.
//
// Highlights:
// - Some/None/OfPtr: construct an Option
// - Match: dispatch to exactly one of the two handlers
// - IsSome/IsNone/Get: presence tests and comma-ok extraction
// - Unwrap/UnwrapOr: forced extraction (panics on None) or extraction with default
// - Map/FlatMap: transform the held value without touching None
//
// Every operation is pure and never mutates the receiver; Map and FlatMap
// build new instances.
package option
