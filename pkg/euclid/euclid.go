// Package euclid computes greatest common divisors with Euclid's algorithm.
package euclid

// Default operands used when the gcd command gets no arguments.
const (
	DefaultA = 54
	DefaultB = 24
)

// GCD returns the greatest common divisor of a and b; GCD(0, 0) is 0.
//
// The result is non-negative except when it would be 2^63, which int cannot
// hold. That only happens when both operands are math.MinInt or zero (but not
// both zero), and GCD then returns math.MinInt. Callers accepting arbitrary
// input should check Overflows first.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// Overflows reports whether GCD(a, b) falls outside the int range.
func Overflows(a, b int) bool {
	return GCD(a, b) < 0
}
