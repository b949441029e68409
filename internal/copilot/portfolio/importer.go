package portfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
	"golang-stock-copilot/pkg/utils"
)

// SourceTrading212 labels portfolios imported from a broker CSV export.
const SourceTrading212 = "Trading212"

// Header aliases, tried in order. Matching ignores case and surrounding spaces.
var (
	tickerAliases       = []string{"Instrument", "Symbol", "Ticker", "Name"}
	sharesAliases       = []string{"Quantity", "Shares", "Units", "Size"}
	avgPriceAliases     = []string{"Average price", "Avg Price", "Entry Price", "Cost per share"}
	currentPriceAliases = []string{"Current price", "Current Price", "Market Price", "Last Price"}
	pnlAliases          = []string{"P&L", "Profit/Loss", "Unrealized P&L", "Gain/Loss"}
)

var ErrEmptyCSV = errors.New("csv has no header row")

type columns map[string]int

func newColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := cols[key]; !ok {
			cols[key] = i
		}
	}
	return cols
}

// text returns the first non-empty cell among aliases.
func (c columns) text(row []string, aliases []string) (string, bool) {
	for _, a := range aliases {
		i, ok := c[strings.ToLower(a)]
		if !ok || i >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v, true
		}
	}
	return "", false
}

// number returns the first parseable cell among aliases.
func (c columns) number(row []string, aliases []string) (float64, bool) {
	for _, a := range aliases {
		i, ok := c[strings.ToLower(a)]
		if !ok || i >= len(row) {
			continue
		}
		if v, err := ParseNumber(row[i]); err == nil {
			return v, true
		}
	}
	return 0, false
}

// Import reads a broker CSV export into a normalised portfolio.
// Rows without a ticker, a positive quantity or a positive average price are skipped and counted.
func Import(r io.Reader) (*dto.Portfolio, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	cols := newColumns(header)

	p := &dto.Portfolio{Positions: []dto.Position{}, Source: SourceTrading212}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		pos, ok := parseRow(cols, row)
		if !ok {
			p.SkippedRows++
			continue
		}
		p.Positions = append(p.Positions, pos)
	}

	Renormalize(p)
	now := utils.Now()
	p.UpdatedAt = &now
	return p, nil
}

func parseRow(cols columns, row []string) (dto.Position, bool) {
	ticker, ok := cols.text(row, tickerAliases)
	if !ok {
		return dto.Position{}, false
	}
	shares, ok := cols.number(row, sharesAliases)
	if !ok || shares <= 0 {
		return dto.Position{}, false
	}
	avg, ok := cols.number(row, avgPriceAliases)
	if !ok || avg <= 0 {
		return dto.Position{}, false
	}

	ticker = strings.ToUpper(ticker)
	pos := dto.Position{
		Ticker:   ticker,
		Shares:   shares,
		AvgPrice: avg,
		Sector:   scoring.SectorOf(ticker),
	}
	if current, ok := cols.number(row, currentPriceAliases); ok && current > 0 {
		pos.CurrentPrice = current
	}
	if pnl, ok := cols.number(row, pnlAliases); ok {
		pos.PnL = pnl
	} else if pos.CurrentPrice > 0 {
		pos.PnL = (pos.CurrentPrice - avg) * shares
	}
	return pos, true
}

// ParseNumber parses a broker formatted number such as "$1,234.50", "€ 12" or "(3.2)".
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ',', ' ', '\u00a0':
			return -1
		}
		return r
	}, s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d.InexactFloat64(), nil
}
