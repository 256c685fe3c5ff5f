// Package intmath provides the exact-integer helpers the rest of the library
// is built on: fraction reduction via the Euclidean algorithm, a
// sign-preserving modulo for wrapping negative indices, and greatest prime
// factor extraction by trial division.
//
// All functions are generic over signed integer widths, so callers can pick
// a representation wide enough for their arithmetic and keep it end to end.
// Everything here is a pure function; the only failure modes are precondition
// violations (zero divisors), which panic.
package intmath
