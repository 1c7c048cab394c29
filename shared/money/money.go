package money

import "math"

// Epsilon absorbs float64 rounding noise in currency comparisons. Two
// amounts closer than this are treated as equal.
const Epsilon = 0.009

// RoundCents rounds an amount to the nearest cent.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Equal reports whether two amounts are equal within Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// GTE reports whether a >= b, tolerating Epsilon of rounding drift.
func GTE(a, b float64) bool {
	return a >= b-Epsilon
}

// LTE reports whether a <= b, tolerating Epsilon of rounding drift.
func LTE(a, b float64) bool {
	return a <= b+Epsilon
}

// IsPositive reports whether the amount is a finite value greater than zero.
func IsPositive(amount float64) bool {
	return IsFinite(amount) && amount > 0
}

// IsFinite reports whether the amount is neither NaN nor infinite.
func IsFinite(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// Percent returns pct percent of amount, rounded to cents.
func Percent(amount, pct float64) float64 {
	return RoundCents(amount * pct / 100)
}
