// Package conv provides checked integer conversions.
//
// Use cases:
//   - Validating translator parameters before they enter uint64 arithmetic
//   - Validating untrusted counts and sizes read from packet block headers
//
// For conversions that are provably safe by domain constraints (e.g. loop
// indices, values already masked to a field width), use direct casts instead.
package conv
