package scoring

import (
	"strings"
	"unicode"

	"golang-stock-copilot/internal/copilot/dto"
)

// OtherSector is the label of tickers outside the universe.
const OtherSector = "Other"

type sectorTickers struct {
	key     string
	tickers []string
}

var (
	allTickers   []string
	sectorByTick map[string]string
)

func init() {
	sectorByTick = make(map[string]string)
	for _, s := range universe {
		for _, t := range s.tickers {
			if _, ok := sectorByTick[t]; ok {
				continue
			}
			sectorByTick[t] = s.key
			allTickers = append(allTickers, t)
		}
	}
}

// SectorKeys returns the sector keys in scan order.
func SectorKeys() []string {
	keys := make([]string, len(universe))
	for i, s := range universe {
		keys[i] = s.key
	}
	return keys
}

// AllTickers returns every distinct ticker of the universe, first occurrence order.
func AllTickers() []string {
	out := make([]string, len(allTickers))
	copy(out, allTickers)
	return out
}

// TotalUniverse returns the number of distinct tickers.
func TotalUniverse() int {
	return len(allTickers)
}

// InUniverse reports whether ticker is tracked.
func InUniverse(ticker string) bool {
	_, ok := sectorByTick[strings.ToUpper(ticker)]
	return ok
}

// SectorOf returns the display label of the first sector listing ticker,
// e.g. "Us/Large/Cap", or "Other".
func SectorOf(ticker string) string {
	key, ok := sectorByTick[strings.ToUpper(ticker)]
	if !ok {
		return OtherSector
	}
	return SectorLabel(key, "/")
}

// SectorLabel title-cases a sector key, replacing underscores with sep.
func SectorLabel(key, sep string) string {
	return titleCase(strings.ReplaceAll(key, "_", sep))
}

// Sample returns up to n tickers taken round-robin across sectors so every sector is represented.
func Sample(n int) []string {
	if n <= 0 || n >= len(allTickers) {
		return AllTickers()
	}
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)
	for i := 0; len(out) < n; i++ {
		progressed := false
		for _, s := range universe {
			if i >= len(s.tickers) {
				continue
			}
			progressed = true
			t := s.tickers[i]
			if seen[t] {
				continue
			}
			seen[t] = true
			out = append(out, t)
			if len(out) == n {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return out
}

// Search returns universe entries whose ticker contains query, scanning sectors in order.
func Search(query string, limit int) []dto.SearchResult {
	q := strings.ToUpper(strings.TrimSpace(query))
	results := []dto.SearchResult{}
	if q == "" {
		return results
	}
	for _, s := range universe {
		for _, t := range s.tickers {
			if !strings.Contains(t, q) {
				continue
			}
			results = append(results, dto.SearchResult{Ticker: t, Sector: SectorLabel(s.key, " ")})
			if limit > 0 && len(results) >= limit {
				return results
			}
		}
	}
	return results
}

// titleCase upper-cases the first letter of every word and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		prevLetter = false
		b.WriteRune(r)
	}
	return b.String()
}
