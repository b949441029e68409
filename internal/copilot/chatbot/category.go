package chatbot

import "strings"

// Category is the kind of question the responder answers.
type Category string

const (
	CategoryStrategy        Category = "strategy"
	CategoryOptimize        Category = "optimize"
	CategoryPredict         Category = "predict"
	CategoryHedge           Category = "hedge"
	CategorySector          Category = "sector"
	CategoryOptions         Category = "options"
	CategoryCrypto          Category = "crypto"
	CategoryDCA             Category = "dca"
	CategoryTradingStyle    Category = "trading_style"
	CategoryCorrelation     Category = "correlation"
	CategoryVolatility      Category = "volatility"
	CategoryFundamentals    Category = "fundamentals"
	CategoryTechnical       Category = "technical"
	CategoryPositionSizing  Category = "position_sizing"
	CategoryTiming          Category = "timing"
	CategoryRisk            Category = "risk"
	CategoryAnalysis        Category = "analysis"
	CategoryPortfolio       Category = "portfolio"
	CategoryRecommendations Category = "recommendations"
	CategoryGeneral         Category = "general"
)

type rule struct {
	category Category
	keywords []string
}

// rules are tried in order; the first rule with a keyword contained in the question wins.
var rules = []rule{
	{CategoryStrategy, []string{"strategy", "approach", "method"}},
	{CategoryOptimize, []string{"optimize", "rebalance", "allocation"}},
	{CategoryPredict, []string{"predict", "forecast", "future", "outlook"}},
	{CategoryHedge, []string{"hedge", "protect", "risk management"}},
	{CategorySector, []string{"sector", "rotation", "theme"}},
	{CategoryOptions, []string{"options", "derivatives", "leverage"}},
	{CategoryCrypto, []string{"crypto", "bitcoin", "ethereum"}},
	{CategoryDCA, []string{"dca", "dollar cost", "averaging"}},
	{CategoryTradingStyle, []string{"swing", "day", "scalp"}},
	{CategoryCorrelation, []string{"correlation", "diversification"}},
	{CategoryVolatility, []string{"volatility", "vix", "vol"}},
	{CategoryFundamentals, []string{"earnings", "fundamentals", "valuation"}},
	{CategoryTechnical, []string{"technical", "chart", "pattern"}},
	{CategoryPositionSizing, []string{"how much", "amount", "size", "position"}},
	{CategoryTiming, []string{"when", "timing", "entry", "buy now"}},
	{CategoryRisk, []string{"risk", "safe", "dangerous"}},
	{CategoryAnalysis, []string{"why", "reason", "analysis"}},
	{CategoryPortfolio, []string{"portfolio", "diversification", "allocation"}},
	{CategoryRecommendations, []string{"best", "top", "recommend"}},
}

// Classify maps a question to its category by substring match on the lower-cased text.
func Classify(question string) Category {
	q := strings.ToLower(question)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.category
			}
		}
	}
	return CategoryGeneral
}
