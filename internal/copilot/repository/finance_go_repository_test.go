package repository

import (
	"testing"
	"time"

	"github.com/piquette/finance-go/datetime"
	"github.com/stretchr/testify/assert"
)

func TestFinanceGoInterval(t *testing.T) {
	cases := []struct {
		in   string
		want datetime.Interval
	}{
		{"1h", datetime.OneHour},
		{"60m", datetime.OneHour},
		{"1wk", datetime.Interval("1wk")},
		{"1mo", datetime.OneMonth},
		{"1d", datetime.OneDay},
		{"", datetime.OneDay},
		{"15m", datetime.OneDay},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, financeGoInterval(tc.in))
		})
	}
}

func TestRangeDuration(t *testing.T) {
	day := 24 * time.Hour
	cases := map[string]time.Duration{
		"1d":    5 * day,
		"5d":    7 * day,
		"1mo":   31 * day,
		"3mo":   92 * day,
		"6mo":   183 * day,
		"1y":    366 * day,
		"2y":    731 * day,
		"5y":    5 * 366 * day,
		"bogus": 92 * day,
	}
	for rng, want := range cases {
		assert.Equal(t, want, RangeDuration(rng), rng)
	}
	assert.Greater(t, RangeDuration("1y"), RangeDuration("6mo"))
}
