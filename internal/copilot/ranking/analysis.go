package ranking

import (
	"fmt"
	"math"
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
)

const (
	maxReasons = 5
	maxRisks   = 4
)

// Analyze writes the plain-text rationale of an opportunity.
func Analyze(a dto.ScoredAsset) dto.DetailedAnalysis {
	return dto.DetailedAnalysis{
		WhyThisWorks:          whyThisWorks(a),
		RiskFactors:           riskFactors(a),
		TechnicalAnalysis:     technicalAnalysis(a),
		FundamentalAnalysis:   fundamentalAnalysis(a),
		InstitutionalActivity: institutionalActivity(a),
		SectorOutlook:         sectorOutlook(a.Sector),
	}
}

func whyThisWorks(a dto.ScoredAsset) []string {
	reasons := []string{}

	if a.Score >= 80 {
		reasons = append(reasons, "Strong overall fundamentals and technical setup")
	} else if a.Score >= 70 {
		reasons = append(reasons, "Solid fundamentals with positive momentum")
	}

	if a.Momentum3M > 15 {
		reasons = append(reasons, fmt.Sprintf("Strong momentum (+%.1f%% in 3 months)", a.Momentum3M))
	} else if a.Momentum3M > 5 {
		reasons = append(reasons, fmt.Sprintf("Positive momentum (+%.1f%% in 3 months)", a.Momentum3M))
	}

	if len(a.Experts) > 0 {
		top := a.Experts
		if len(top) > 2 {
			top = top[:2]
		}
		reasons = append(reasons, "Held by top investors: "+strings.Join(top, ", "))
	}

	if a.RSI >= 30 && a.RSI <= 70 {
		reasons = append(reasons, "Technical indicators in favorable range")
	}
	if a.VolumeRatio > 1.5 {
		reasons = append(reasons, "High volume indicates strong interest")
	}

	sector := strings.ToLower(a.Sector)
	if strings.Contains(sector, "tech") {
		reasons = append(reasons, "Technology sector showing strong growth")
	} else if strings.Contains(sector, "healthcare") {
		reasons = append(reasons, "Healthcare sector defensive positioning")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

func riskFactors(a dto.ScoredAsset) []string {
	risks := []string{}

	if a.Score < 70 {
		risks = append(risks, "Moderate fundamental concerns")
	}
	if math.Abs(a.Momentum3M) > 30 {
		risks = append(risks, "High momentum may indicate overextension")
	}
	if a.RSI > 70 {
		risks = append(risks, "Overbought technical conditions")
	} else if a.RSI < 30 {
		risks = append(risks, "Oversold conditions may continue")
	}

	sector := strings.ToLower(a.Sector)
	if strings.Contains(sector, "crypto") {
		risks = append(risks, "Cryptocurrency high volatility risk")
	} else if strings.Contains(sector, "small") {
		risks = append(risks, "Small cap liquidity and volatility risk")
	}

	if a.VolumeRatio < 0.7 {
		risks = append(risks, "Low volume may indicate weak interest")
	}

	if len(risks) > maxRisks {
		risks = risks[:maxRisks]
	}
	return risks
}

func technicalAnalysis(a dto.ScoredAsset) string {
	switch {
	case a.Momentum3M > 15 && a.RSI < 70:
		return "Strong uptrend with healthy momentum"
	case a.Momentum3M > 5:
		return "Positive trend with moderate momentum"
	case a.Momentum3M < -15:
		return "Downtrend, wait for reversal signals"
	default:
		return "Sideways movement, look for breakout"
	}
}

func fundamentalAnalysis(a dto.ScoredAsset) string {
	switch {
	case a.Score >= 80:
		return "Excellent fundamentals with strong competitive position"
	case a.Score >= 70:
		return "Solid fundamentals with good growth prospects"
	case a.Score >= 60:
		return "Decent fundamentals, monitor for improvement"
	default:
		return "Fundamentals need improvement"
	}
}

func institutionalActivity(a dto.ScoredAsset) string {
	n := len(a.Experts)
	switch {
	case n >= 3:
		return fmt.Sprintf("Strong institutional support from %d top investors", n)
	case n >= 1:
		return fmt.Sprintf("Moderate institutional interest from %d investors", n)
	default:
		return "Limited institutional activity"
	}
}

func sectorOutlook(sector string) string {
	s := strings.ToLower(sector)
	switch {
	case strings.Contains(s, "tech"):
		return "Technology sector showing strong growth momentum"
	case strings.Contains(s, "healthcare"):
		return "Healthcare sector defensive positioning"
	case strings.Contains(s, "financial"):
		return "Financial sector sensitive to interest rates"
	case strings.Contains(s, "energy"):
		return "Energy sector volatile with commodity prices"
	default:
		return "Sector outlook mixed"
	}
}
