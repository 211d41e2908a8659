// Package result provides Result[T, E], a two-case variant for explicit,
// recoverable error signaling: Ok carries a success value, Err carries an
// error value.
//
// Match is deliberately the whole consumption surface; there is no
// Map/Unwrap/UnwrapOr here, see package option for value-shaped combinators.
package result
