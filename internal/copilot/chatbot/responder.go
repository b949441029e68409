package chatbot

import (
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/scoring"
)

// Input is everything a question may be answered from.
type Input struct {
	Question      string
	Assets        []dto.ScoredAsset
	Portfolio     *dto.Portfolio
	Opportunities []dto.Opportunity
}

// Answer is a templated markdown reply.
type Answer struct {
	Category Category
	Ticker   string
	Text     string
}

// Kelly sizing assumptions.
const (
	kellyWinRate = 0.6
	kellyAvgWin  = 0.15
	kellyAvgLoss = 0.10
	kellyCap     = 0.25
	maxPosition  = 0.10
	defaultVol   = 0.25
)

// Responder answers trading questions from the current analysis state. It is stateless.
type Responder struct{}

func NewResponder() *Responder {
	return &Responder{}
}

type request struct {
	Input
	ticker string
	amount float64
	asset  *dto.ScoredAsset
	lower  string
}

// Respond classifies the question and renders the answer for its category.
func (r *Responder) Respond(in Input) Answer {
	req := request{
		Input:  in,
		lower:  strings.ToLower(in.Question),
		amount: ExtractAmount(in.Question),
	}
	req.ticker = ExtractTicker(in.Question, func(t string) bool {
		return findAsset(in.Assets, t) != nil || scoring.InUniverse(t)
	})
	if req.ticker != "" {
		req.asset = findAsset(in.Assets, req.ticker)
	}

	cat := Classify(in.Question)
	var text string
	switch cat {
	case CategoryStrategy:
		text = strategyAnswer(req)
	case CategoryOptimize:
		text = optimizeAnswer(req)
	case CategoryPredict:
		text = predictAnswer(req)
	case CategoryHedge:
		text = hedgeAnswer(req)
	case CategorySector:
		text = sectorAnswer()
	case CategoryOptions:
		text = optionsAnswer(req)
	case CategoryCrypto:
		text = cryptoAnswer(req)
	case CategoryDCA:
		text = dcaAnswer(req)
	case CategoryTradingStyle:
		text = tradingStyleAnswer(req)
	case CategoryCorrelation:
		text = correlationAnswer(req)
	case CategoryVolatility:
		text = volatilityAnswer(req)
	case CategoryFundamentals:
		text = fundamentalsAnswer(req)
	case CategoryTechnical:
		text = technicalAnswer(req)
	case CategoryPositionSizing:
		text = positionSizingAnswer(req)
	case CategoryTiming:
		text = timingAnswer(req)
	case CategoryRisk:
		text = riskAnswer(req)
	case CategoryAnalysis:
		text = analysisAnswer(req)
	case CategoryPortfolio:
		text = portfolioAnswer(req)
	case CategoryRecommendations:
		text = recommendationsAnswer(req)
	default:
		text = GeneralAnswer
	}
	return Answer{Category: cat, Ticker: req.ticker, Text: text}
}

func findAsset(assets []dto.ScoredAsset, ticker string) *dto.ScoredAsset {
	for i := range assets {
		if strings.EqualFold(assets[i].Ticker, ticker) {
			return &assets[i]
		}
	}
	return nil
}

func hasPositions(p *dto.Portfolio) bool {
	return p != nil && len(p.Positions) > 0
}

func portfolioValue(p *dto.Portfolio) float64 {
	if p == nil {
		return 0
	}
	total := 0.0
	for _, pos := range p.Positions {
		total += pos.Value
	}
	return total
}

// KellyFraction is the Kelly bet size under the fixed win/loss assumptions, bounded to [0, 0.25].
func KellyFraction() float64 {
	k := (kellyWinRate*kellyAvgWin - (1-kellyWinRate)*kellyAvgLoss) / kellyAvgWin
	if k < 0 {
		return 0
	}
	if k > kellyCap {
		return kellyCap
	}
	return k
}

// RecommendedSize is the most conservative of half Kelly, inverse volatility and the position cap.
func RecommendedSize(volatility float64) float64 {
	if volatility <= 0 {
		volatility = defaultVol
	}
	size := KellyFraction() * 0.5
	if v := 0.1 / volatility; v < size {
		size = v
	}
	if size > maxPosition {
		size = maxPosition
	}
	return size
}

func missingTicker(topic string) string {
	return "I'd be happy to help with " + topic + "! Could you specify which stock you're asking about?"
}

func unknownTicker(ticker string) string {
	return "I don't have current analysis for " + ticker + ". Please make sure the ticker symbol is correct."
}
