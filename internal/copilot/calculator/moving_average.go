package calculator

import (
	"errors"
	"math"
)

var errPeriod = errors.New("period must be positive")

// SMA returns the mean of the last period values.
func SMA(values []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errPeriod
	}
	if len(values) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period), nil
}

// EMASeries returns the exponential moving average of values with alpha = 2/(span+1).
// The series is seeded with the first value rather than an SMA of the first span values.
func EMASeries(values []float64, span int) []float64 {
	if len(values) == 0 || span <= 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// SampleStdDev returns the sample standard deviation (n-1 denominator) of the last period values.
func SampleStdDev(values []float64, period int) (float64, error) {
	if period <= 1 {
		return 0, errors.New("period must be greater than one")
	}
	mean, err := SMA(values, period)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(period-1)), nil
}
