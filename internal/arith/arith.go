// Package arith provides the integer arithmetic primitives checked by
// the mulcheck smoke suite.
package arith

// Multiply returns the product of two signed integers.
//
// Overflow follows Go's native semantics: the result wraps around the
// platform's int width (two's complement). Callers that need checked
// or saturating multiplication must guard the operands themselves.
func Multiply(a, b int) int {
	return a * b
}
