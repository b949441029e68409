package ranking

import (
	"math"
	"sort"
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/pkg/utils"
)

// DefaultCriteria are the thresholds applied when the caller supplies none.
func DefaultCriteria() dto.OpportunityCriteria {
	return dto.OpportunityCriteria{
		MinProfitProbability: 0.75,
		MinProfitTarget:      0.15,
		MaxRiskLevel:         0.20,
		Limit:                3,
	}
}

// Meets reports whether opp passes every threshold of c.
func Meets(opp dto.Opportunity, c dto.OpportunityCriteria) bool {
	return opp.ProfitProbability >= c.MinProfitProbability &&
		opp.ProfitTarget >= c.MinProfitTarget &&
		opp.RiskLevel <= c.MaxRiskLevel
}

// Rank evaluates every asset, keeps those meeting c and returns the best
// c.Limit of them by profit score. Ties keep input order.
func Rank(assets []dto.ScoredAsset, c dto.OpportunityCriteria) []dto.Opportunity {
	if c.Limit <= 0 {
		c.Limit = DefaultCriteria().Limit
	}
	out := make([]dto.Opportunity, 0, c.Limit)
	for _, a := range assets {
		if a.Ticker == "" {
			continue
		}
		opp := Evaluate(a)
		if Meets(opp, c) {
			out = append(out, opp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProfitScore > out[j].ProfitScore
	})
	if len(out) > c.Limit {
		out = out[:c.Limit]
	}
	return out
}

// Evaluate derives the profit metrics and the written analysis of one asset without filtering.
func Evaluate(a dto.ScoredAsset) dto.Opportunity {
	prob := ProfitProbability(a)
	target := ProfitTarget(a)
	risk := RiskLevel(a)
	entry := EntryPrice(a)

	return dto.Opportunity{
		Ticker:            a.Ticker,
		Name:              CompanyName(a.Ticker),
		Sector:            a.Sector,
		MarketCap:         marketCap(a.Sector),
		CurrentPrice:      a.Price,
		ProfitTarget:      target,
		ProfitProbability: prob,
		RiskLevel:         risk,
		ProfitScore:       prob * target * (1 - risk*0.5),
		EntryPrice:        entry,
		StopLoss:          entry * (1 - (0.10 + risk*0.15)),
		TargetPrice:       a.Price * (1 + target),
		ExpectedReturn:    target * 100,
		PositionSize:      utils.Clamp(prob*0.15*(1-risk*0.5), 0.03, 0.12),
		Timeline:          Timeline(a),
		Confidence:        confidenceFor(prob),
		DetailedAnalysis:  Analyze(a),
	}
}

// ProfitProbability scales the score by momentum, RSI, volume and expert factors, bounded to [0.5, 0.95].
func ProfitProbability(a dto.ScoredAsset) float64 {
	momentum := 1.0
	switch m := a.Momentum3M; {
	case m > 15:
		momentum = 1.2
	case m > 5:
		momentum = 1.1
	case m < -15:
		momentum = 0.7
	case m < -5:
		momentum = 0.8
	}

	rsi := 1.0
	if a.RSI >= 30 && a.RSI <= 70 {
		rsi = 1.1
	} else if a.RSI > 80 || a.RSI < 20 {
		rsi = 0.8
	}

	volume := 1.0
	if a.VolumeRatio > 1.5 {
		volume = 1.15
	} else if a.VolumeRatio < 0.7 {
		volume = 0.9
	}

	experts := 1 + float64(len(a.Experts))*0.05

	return utils.Clamp(a.Score/100*momentum*rsi*volume*experts, 0.5, 0.95)
}

// ProfitTarget is the expected upside fraction, bounded to [0.10, 0.50].
func ProfitTarget(a dto.ScoredAsset) float64 {
	base := a.Score / 100 * 0.30

	var multiplier float64
	switch m := a.Momentum3M; {
	case m > 20:
		multiplier = 1.3
	case m > 10:
		multiplier = 1.2
	case m > 0:
		multiplier = 1.1
	default:
		multiplier = 0.9
	}

	return utils.Clamp(base*multiplier*(1+(Volatility(a.Sector)-0.2)), 0.10, 0.50)
}

// RiskLevel is the expected downside fraction, bounded to [0.05, 0.40].
func RiskLevel(a dto.ScoredAsset) float64 {
	base := (100 - a.Score) / 100
	momentum := math.Min(0.3, math.Abs(a.Momentum3M)/100)
	volatility := math.Min(0.4, Volatility(a.Sector))
	risk := base*0.4 + momentum*0.3 + volatility*0.2 + sectorRisk(a.Sector)*0.1
	return utils.Clamp(risk, 0.05, 0.4)
}

// Volatility estimates annual volatility from the sector label.
func Volatility(sector string) float64 {
	s := strings.ToLower(sector)
	switch {
	case strings.Contains(s, "crypto"):
		return 0.6
	case strings.Contains(s, "small"):
		return 0.4
	case strings.Contains(s, "tech"):
		return 0.3
	case strings.Contains(s, "large"):
		return 0.2
	default:
		return 0.25
	}
}

func sectorRisk(sector string) float64 {
	s := strings.ToLower(sector)
	switch {
	case strings.Contains(s, "crypto"):
		return 0.3
	case strings.Contains(s, "small"):
		return 0.2
	case strings.Contains(s, "biotech"):
		return 0.25
	default:
		return 0
	}
}

// EntryPrice waits for a pullback on strong momentum.
func EntryPrice(a dto.ScoredAsset) float64 {
	switch {
	case a.Momentum3M > 15:
		return a.Price * 0.98
	case a.Momentum3M > 5:
		return a.Price * 0.99
	default:
		return a.Price
	}
}

func Timeline(a dto.ScoredAsset) string {
	switch m := a.Momentum3M; {
	case m > 20 && Volatility(a.Sector) < 0.3:
		return "2-3 months"
	case m > 10:
		return "3-4 months"
	case m > 0:
		return "4-6 months"
	default:
		return "6-12 months"
	}
}

func confidenceFor(prob float64) string {
	switch {
	case prob >= 0.85:
		return "Very High"
	case prob >= 0.80:
		return "High"
	case prob >= 0.75:
		return "Medium-High"
	default:
		return "Medium"
	}
}

func marketCap(sector string) string {
	s := strings.ToLower(sector)
	switch {
	case strings.Contains(s, "large"):
		return "Large Cap"
	case strings.Contains(s, "mid"):
		return "Mid Cap"
	case strings.Contains(s, "small"):
		return "Small Cap"
	default:
		return "Unknown"
	}
}

var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft Corporation",
	"NVDA":  "NVIDIA Corporation",
	"GOOGL": "Alphabet Inc.",
	"AMZN":  "Amazon.com Inc.",
	"TSLA":  "Tesla Inc.",
	"META":  "Meta Platforms Inc.",
	"NFLX":  "Netflix Inc.",
	"AMD":   "Advanced Micro Devices",
	"CRM":   "Salesforce Inc.",
}

// CompanyName returns the display name of ticker, or the ticker itself.
func CompanyName(ticker string) string {
	if name, ok := companyNames[strings.ToUpper(ticker)]; ok {
		return name
	}
	return ticker
}
