package util

import (
	"math"
)

func FloatPointer(f float64) *float64 {
	return &f
}

func IntPointer(i int) *int {
	return &i
}

func StringPointer(s string) *string {
	return &s
}

// CleanFloat normalizes garbage numerics from upstream. NaN and Inf become
// nil so they never reach downstream consumers as JSON/CSV values.
func CleanFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	if math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	return f
}

// CleanScalar is CleanFloat for non-optional fields, collapsing NaN/Inf to 0.
func CleanScalar(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
