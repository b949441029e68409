package calculator

import "errors"

// RSI computes the relative strength index from the last period close-to-close deltas.
// Average gain and average loss are plain means over the window.
// When the window has no losses the RSI is 100, and a flat window yields 50.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errPeriod
	}
	if len(closes) < period+1 {
		return 0, errors.New("not enough data for RSI calculation")
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	switch {
	case avgLoss == 0 && avgGain == 0:
		return 50, nil
	case avgLoss == 0:
		return 100, nil
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), nil
}
