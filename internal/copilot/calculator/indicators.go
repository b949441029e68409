package calculator

import (
	"golang-stock-copilot/internal/copilot/dto"
)

const (
	// MinBars is the minimum series length for which indicators are produced.
	MinBars = 20

	rsiPeriod    = 14
	macdFast     = 12
	macdSlow     = 26
	macdSignal   = 9
	bandPeriod   = 20
	volumePeriod = 20
)

// Momentum horizons in bars.
const (
	HorizonWeek    = 5
	HorizonMonth   = 20
	HorizonQuarter = 60
)

// Compute derives the technical indicators of a chronological series.
// It returns false when fewer than MinBars bars are supplied.
func Compute(bars []dto.OHLCV) (dto.TechnicalIndicators, bool) {
	if len(bars) < MinBars {
		return dto.TechnicalIndicators{}, false
	}

	closes := Closes(bars)
	volumes := Volumes(bars)
	price := closes[len(closes)-1]

	sma20, _ := SMA(closes, 20)
	sma50 := sma20
	if len(closes) >= 50 {
		sma50, _ = SMA(closes, 50)
	}

	rsi, err := RSI(closes, rsiPeriod)
	if err != nil {
		rsi = 50
	}

	macd, signal := MACD(closes)

	ind := dto.TechnicalIndicators{
		Price:       price,
		SMA20:       sma20,
		SMA50:       sma50,
		RSI:         rsi,
		MACD:        macd,
		MACDSignal:  signal,
		VolumeRatio: VolumeRatio(volumes),
		Momentum1W:  Momentum(closes, HorizonWeek),
		Momentum1M:  Momentum(closes, HorizonMonth),
		Momentum3M:  Momentum(closes, HorizonQuarter),
	}
	ind.BBUpper, ind.BBLower, ind.BBPosition = Bollinger(closes)

	return ind, true
}

// MACD returns the last MACD value (EMA12 - EMA26) and its EMA9 signal.
func MACD(closes []float64) (float64, float64) {
	if len(closes) == 0 {
		return 0, 0
	}
	fast := EMASeries(closes, macdFast)
	slow := EMASeries(closes, macdSlow)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = fast[i] - slow[i]
	}
	signal := EMASeries(line, macdSignal)
	return line[len(line)-1], signal[len(signal)-1]
}

// Momentum returns the percentage change from close[n-k] to the last close, or 0 when n < k.
func Momentum(closes []float64, k int) float64 {
	n := len(closes)
	if k <= 0 || n < k {
		return 0
	}
	ref := closes[n-k]
	if ref == 0 {
		return 0
	}
	return (closes[n-1]/ref - 1) * 100
}

// VolumeRatio returns the last volume divided by the mean of the last 20 volumes.
func VolumeRatio(volumes []float64) float64 {
	avg, err := SMA(volumes, volumePeriod)
	if err != nil || avg <= 0 {
		return 1
	}
	return volumes[len(volumes)-1] / avg
}

// Bollinger returns the upper band, lower band and the price position between them.
// The position is 0.5 when the bands collapse.
func Bollinger(closes []float64) (upper, lower, position float64) {
	mid, err := SMA(closes, bandPeriod)
	if err != nil {
		return 0, 0, 0.5
	}
	std, _ := SampleStdDev(closes, bandPeriod)
	upper = mid + 2*std
	lower = mid - 2*std
	if upper == lower {
		return upper, lower, 0.5
	}
	price := closes[len(closes)-1]
	return upper, lower, (price - lower) / (upper - lower)
}

func Closes(bars []dto.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

func Volumes(bars []dto.OHLCV) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}
