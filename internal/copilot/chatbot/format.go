package chatbot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// money formats v as whole dollars with thousands separators.
func money(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// pct formats a fraction as a percentage.
func pct(v float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, v*100)
}

type builder struct {
	strings.Builder
}

func (b *builder) line(format string, args ...any) {
	fmt.Fprintf(&b.Builder, format, args...)
	b.WriteByte('\n')
}

func (b *builder) bullets(items ...string) {
	for _, it := range items {
		b.WriteString("• ")
		b.WriteString(it)
		b.WriteByte('\n')
	}
}

func (b *builder) blank() {
	b.WriteByte('\n')
}
