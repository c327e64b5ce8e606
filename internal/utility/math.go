package utility

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/romellogoodman/monolith/internal/api"
)

// Round rounds value to decimals places, halves away from zero.
func Round(value float64, decimals int) api.Response {
	if decimals < 0 {
		return api.Failure("Decimals must be a non-negative integer", api.ErrCodeMath)
	}

	result := scalar.Round(value, decimals)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return api.Failure("Result is not a finite number", api.ErrCodeMath)
	}
	return api.Success(result, meta(typeNumber, typeNumber))
}

// Clamp limits value to the closed range [lo, hi].
func Clamp(value, lo, hi float64) api.Response {
	if lo > hi {
		return api.Failure("Min value cannot be greater than max value", api.ErrCodeInvalidRange)
	}
	return api.Success(math.Min(math.Max(value, lo), hi), meta(typeNumber, typeNumber))
}
