package scoring

import (
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
)

// Expert is a tracked institutional portfolio.
type Expert struct {
	Name     string
	Weight   int
	Style    string
	Holdings []string
}

var experts = []Expert{
	{
		Name:     "Warren Buffett",
		Weight:   10,
		Style:    "Value Investing",
		Holdings: []string{"AAPL", "BAC", "AXP", "KO", "CVX", "OXY", "V", "MCO"},
	},
	{
		Name:     "Cathie Wood (ARK)",
		Weight:   9,
		Style:    "Disruptive Innovation",
		Holdings: []string{"TSLA", "COIN", "ROKU", "SQ", "PLTR", "SHOP", "SPOT", "CRSP", "TDOC", "BTC-USD", "ETH-USD"},
	},
	{
		Name:     "BlackRock",
		Weight:   10,
		Style:    "Institutional",
		Holdings: []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "JPM", "V", "MA", "UNH", "LLY", "JNJ"},
	},
	{
		Name:     "Vanguard",
		Weight:   10,
		Style:    "Index/Passive",
		Holdings: []string{"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "JPM", "V", "MA", "HD", "WMT"},
	},
	{
		Name:     "Crypto Whales",
		Weight:   7,
		Style:    "Crypto",
		Holdings: []string{"BTC-USD", "ETH-USD", "BNB-USD", "SOL-USD", "XRP-USD", "ADA-USD", "AVAX-USD", "MATIC-USD"},
	},
}

// holders maps a ticker to the indexes of the experts holding it, in table order.
var holders = func() map[string][]int {
	idx := make(map[string][]int)
	for i, e := range experts {
		for _, t := range e.Holdings {
			idx[t] = append(idx[t], i)
		}
	}
	return idx
}()

// Experts returns a copy of the expert table.
func Experts() []Expert {
	out := make([]Expert, len(experts))
	copy(out, experts)
	return out
}

// ExpertsHolding returns the names of the experts holding ticker, in table order.
func ExpertsHolding(ticker string) []string {
	ids := holders[strings.ToUpper(ticker)]
	names := make([]string, 0, len(ids))
	for _, i := range ids {
		names = append(names, experts[i].Name)
	}
	return names
}

// ExpertWeight returns the summed weight of the experts holding ticker.
func ExpertWeight(ticker string) int {
	total := 0
	for _, i := range holders[strings.ToUpper(ticker)] {
		total += experts[i].Weight
	}
	return total
}

// LookupExpertSignal builds the expert signal of ticker.
func LookupExpertSignal(ticker string) dto.ExpertSignal {
	names := ExpertsHolding(ticker)
	return dto.ExpertSignal{
		Experts:      names,
		NumExperts:   len(names),
		ExpertWeight: ExpertWeight(ticker),
	}
}
