package chatbot

import (
	"regexp"
	"strconv"
	"strings"

	"golang-stock-copilot/internal/copilot/scoring"
)

var (
	dollarTicker = regexp.MustCompile(`\$([A-Za-z]{1,5})\b`)
	cryptoTicker = regexp.MustCompile(`\b([A-Za-z0-9]{2,10}-[Uu][Ss][Dd])\b`)
	wordToken    = regexp.MustCompile(`[A-Za-z][A-Za-z.\-]{0,9}`)

	amountPatterns = []struct {
		re         *regexp.Regexp
		multiplier float64
	}{
		{regexp.MustCompile(`\$(\d+(?:,\d{3})*(?:\.\d{2})?)`), 1},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*dollars?`), 1},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*k\b`), 1000},
		{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d{2})?)\s*thousand`), 1000},
	}
)

// stopwords are short English words that collide with real tickers.
var stopwords = map[string]bool{
	"A": true, "I": true, "AN": true, "AM": true, "AS": true, "AT": true, "BE": true, "BY": true,
	"DO": true, "GO": true, "IF": true, "IN": true, "IS": true, "IT": true, "ME": true, "MY": true,
	"NO": true, "OF": true, "ON": true, "OR": true, "SO": true, "TO": true, "UP": true, "US": true,
	"WE": true, "ALL": true, "AND": true, "ARE": true, "BUY": true, "CAN": true, "FOR": true,
	"HAS": true, "HOW": true, "NOW": true, "OUT": true, "THE": true, "WHY": true, "YOU": true,
	"TOP": true, "BEST": true, "GOOD": true, "HOLD": true, "SELL": true, "WHAT": true, "WHEN": true,
	"RISK": true, "SHOP": true, "SPOT": true, "AI": true, "ETF": true, "USD": true, "CEO": true,
	"IPO": true, "YTD": true, "RSI": true, "MACD": true, "DCA": true, "VIX": true, "LOW": true, "HIGH": true,
}

// ExtractTicker finds the ticker a question refers to. Candidates must be known;
// "$T" and "T-USD" forms are preferred over bare words written in upper case.
// Lower-case words only match tickers held by a tracked expert.
func ExtractTicker(question string, known func(string) bool) string {
	for _, m := range dollarTicker.FindAllStringSubmatch(question, -1) {
		if t := strings.ToUpper(m[1]); known(t) {
			return t
		}
	}
	for _, m := range cryptoTicker.FindAllStringSubmatch(question, -1) {
		if t := strings.ToUpper(m[1]); known(t) {
			return t
		}
	}

	words := wordToken.FindAllString(question, -1)
	for _, w := range words {
		w = strings.TrimRight(w, ".-")
		if w == strings.ToUpper(w) && len(w) <= 6 && !stopwords[w] && known(w) {
			return w
		}
	}
	for _, w := range words {
		t := strings.ToUpper(strings.TrimRight(w, ".-"))
		if len(t) >= 3 && !stopwords[t] && scoring.ExpertWeight(t) > 0 && known(t) {
			return t
		}
	}
	return ""
}

// ExtractAmount returns the first dollar amount mentioned, or 0.
func ExtractAmount(question string) float64 {
	q := strings.ToLower(question)
	for _, p := range amountPatterns {
		m := p.re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return v * p.multiplier
	}
	return 0
}

var strategyNames = []string{"momentum", "value", "growth", "dividend", "contrarian", "arbitrage"}

// ExtractStrategy returns the first named strategy in the question.
func ExtractStrategy(question string) string {
	q := strings.ToLower(question)
	for _, s := range strategyNames {
		if strings.Contains(q, s) {
			return s
		}
	}
	return ""
}
