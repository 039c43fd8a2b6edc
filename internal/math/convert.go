package math

import "math"

// DefaultScale is the default float to fixed-point scale factor.
// It matches the precision the model contracts operate with.
const DefaultScale = 1e9

// Fixed converts the value to its fixed-point ledger representation for the given scale.
func Fixed(value float64, scale float64) int64 {
	return int64(math.Round(value * scale))
}

// FixedVector converts the values to their fixed-point ledger representation.
func FixedVector(values []float64, scale float64) []int64 {
	fixed := make([]int64, len(values))
	for i, v := range values {
		fixed[i] = Fixed(v, scale)
	}
	return fixed
}

// RoundVector rounds the values to the integer ledger representation, without scaling.
// It is used for data that is integral already, like feature counts.
func RoundVector(values []float64) []int64 {
	vv := make([]int64, len(values))
	for i, v := range values {
		vv[i] = int64(math.Round(v))
	}
	return vv
}

// IntVector widens the values to the integer ledger representation, without scaling.
// It is used for data that is integral already, like counts and feature indices.
func IntVector(values []int) []int64 {
	vv := make([]int64, len(values))
	for i, v := range values {
		vv[i] = int64(v)
	}
	return vv
}
