package chatbot

import (
	"fmt"
	"sort"
	"strings"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/portfolio"
	"golang-stock-copilot/internal/copilot/scoring"
)

// GeneralAnswer is the capability menu returned for unclassified questions.
const GeneralAnswer = "I'm your advanced AI trading partner! I can help with:\n\n" +
	"• Advanced position sizing (Kelly Criterion, Risk Parity)\n" +
	"• Multi-timeframe analysis\n" +
	"• Options strategies\n" +
	"• Portfolio optimization\n" +
	"• Risk management\n" +
	"• Market predictions\n" +
	"• Sector rotation\n" +
	"• Volatility analysis\n\n" +
	"What would you like to know?"

type strategyInfo struct {
	description string
	indicators  string
	risk        string
	timeframe   string
	details     []string
}

var strategies = map[string]strategyInfo{
	"momentum": {
		"Buy high, sell higher - follows strong trends", "RSI, MACD, Volume", "Medium-High", "Short-Medium",
		[]string{"**Entry:** Breakout above resistance with volume", "**Exit:** Momentum divergence or support break", "**Risk Management:** Trail stop-loss"},
	},
	"value": {
		"Buy undervalued assets, wait for correction", "P/E, P/B, DCF", "Low-Medium", "Long",
		[]string{"**Entry:** Undervalued based on fundamentals", "**Exit:** Price reaches fair value", "**Risk Management:** Wide stop-loss for volatility"},
	},
	"growth": {
		"Focus on high-growth companies", "Revenue Growth, EPS Growth, ROE", "Medium-High", "Medium-Long",
		[]string{"**Entry:** Strong growth metrics and momentum", "**Exit:** Growth slows or valuation excessive", "**Risk Management:** Monitor growth sustainability"},
	},
	"dividend": {
		"Income-focused investing", "Dividend Yield, Payout Ratio, Dividend Growth", "Low", "Long",
		[]string{"**Entry:** High dividend yield with growth", "**Exit:** Dividend cut or yield too low", "**Risk Management:** Focus on dividend sustainability"},
	},
	"contrarian": {
		"Go against market sentiment", "Sentiment, Fear & Greed, Put/Call Ratio", "High", "Medium",
		[]string{"**Entry:** Extreme sentiment readings", "**Exit:** Sentiment normalizes", "**Risk Management:** Position sizing critical"},
	},
	"arbitrage": {
		"Exploit price differences", "Spread, Correlation, Volatility", "Low", "Short",
		[]string{"**Entry:** Price discrepancies identified", "**Exit:** Prices converge", "**Risk Management:** Monitor correlation breakdown"},
	},
}

func strategyAnswer(req request) string {
	var b builder
	name := ExtractStrategy(req.Question)
	info, ok := strategies[name]
	if !ok {
		b.line("**Advanced Trading Strategy: Balanced**")
		b.blank()
		b.line("**Strategy Analysis:**")
		b.line("Based on current market conditions, I recommend:")
		b.blank()
		b.line("**Recommended Strategy:** Balanced approach combining value and growth elements. Current market conditions favor quality companies with strong fundamentals and reasonable valuations.")
		return b.String()
	}
	b.line("**Advanced Trading Strategy: %s**", strings.ToUpper(name[:1])+name[1:])
	b.blank()
	b.line("**Description:** %s", info.description)
	b.line("**Risk Level:** %s", info.risk)
	b.line("**Timeframe:** %s", info.timeframe)
	b.line("**Key Indicators:** %s", info.indicators)
	b.blank()
	b.bullets(info.details...)
	return b.String()
}

func optimizeAnswer(req request) string {
	var b builder
	b.line("**Advanced Portfolio Optimization**")
	b.blank()
	if !hasPositions(req.Portfolio) {
		b.line("No portfolio data available. Import your Trading212 portfolio for optimization!")
		b.blank()
		b.line("**General Optimization Principles:**")
		b.bullets("Use Modern Portfolio Theory (MPT)", "Optimize risk-adjusted returns", "Consider correlation between assets", "Rebalance quarterly")
		return b.String()
	}

	p := req.Portfolio
	b.line("**Current Portfolio Analysis:**")
	b.bullets(
		"Total Value: "+money(portfolioValue(p)),
		fmt.Sprintf("Number of Positions: %d", len(p.Positions)),
		"Concentration Risk: "+pct(portfolio.Concentration(p), 1),
		fmt.Sprintf("Effective Number of Stocks: %.1f", portfolio.EffectivePositions(p)),
	)
	b.blank()
	b.line("**Optimization Recommendations:**")
	b.line("• **Sector Diversification:**")
	for _, s := range sectorAllocation(p) {
		if s.weight > 0.3 {
			b.line("  - Reduce %s exposure (currently %s)", s.sector, pct(s.weight, 1))
		}
	}
	b.line("• **Correlation Optimization:**")
	b.line("  - Add uncorrelated assets to reduce portfolio volatility")
	b.line("  - Consider international diversification")
	b.blank()
	b.line("**Rebalancing Strategy:**")
	b.bullets("Rebalance when any position exceeds target allocation by 5%", "Quarterly review and adjustment", "Use dollar-cost averaging for new positions")
	return b.String()
}

type sectorWeight struct {
	sector string
	weight float64
}

// sectorAllocation groups position values by sector, largest first.
func sectorAllocation(p *dto.Portfolio) []sectorWeight {
	total := portfolioValue(p)
	bySector := map[string]float64{}
	var order []string
	for _, pos := range p.Positions {
		s := pos.Sector
		if s == "" {
			s = "Unknown"
		}
		if _, ok := bySector[s]; !ok {
			order = append(order, s)
		}
		bySector[s] += pos.Value
	}
	out := make([]sectorWeight, 0, len(order))
	for _, s := range order {
		w := 0.0
		if total > 0 {
			w = bySector[s] / total
		}
		out = append(out, sectorWeight{s, w})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].weight > out[j].weight })
	return out
}

func pricePrediction(score float64) string {
	switch {
	case score >= 80:
		return "**Bullish Outlook:** Strong fundamentals and momentum suggest upward price movement. Target: +15-25% over 6 months."
	case score >= 60:
		return "**Moderately Bullish:** Positive trends suggest modest gains. Target: +5-15% over 6 months."
	case score >= 40:
		return "**Neutral:** Mixed signals suggest sideways movement. Target: -5% to +5% over 6 months."
	default:
		return "**Bearish:** Weak fundamentals suggest downward pressure. Target: -10-20% over 6 months."
	}
}

// tickerSection writes the per-ticker block shared by several answers.
func tickerSection(b *builder, req request, title string, body func(a *dto.ScoredAsset) string) {
	if req.ticker == "" {
		return
	}
	b.line("**%s %s:**", req.ticker, title)
	if req.asset != nil {
		b.line("%s", body(req.asset))
	} else {
		b.line("No current analysis available for %s.", req.ticker)
	}
	b.blank()
}

func predictAnswer(req request) string {
	var b builder
	b.line("**Market Prediction Analysis**")
	b.blank()
	tickerSection(&b, req, "Outlook", func(a *dto.ScoredAsset) string { return pricePrediction(a.Score) })
	b.line("**Overall Market Outlook:**")
	b.line("%s", marketOutlook(req.Assets))
	b.blank()
	b.line("**Key Factors to Watch:**")
	b.bullets("Federal Reserve policy and interest rates", "Corporate earnings growth", "Inflation trends", "Geopolitical developments", "Sector rotation patterns")
	b.blank()
	b.line("**Disclaimer:** Predictions are based on historical patterns and current data. Past performance doesn't guarantee future results.")
	return b.String()
}

// marketOutlook summarises the breadth of the analysed batch.
func marketOutlook(assets []dto.ScoredAsset) string {
	if len(assets) == 0 {
		return "**Market Outlook:** Current conditions suggest moderate growth with increased volatility. Focus on quality companies with strong fundamentals."
	}
	bullish := 0
	for _, a := range assets {
		if a.Trend == scoring.TrendBullish {
			bullish++
		}
	}
	share := float64(bullish) / float64(len(assets))
	tone := "mixed conditions, stay selective"
	if share >= 0.6 {
		tone = "broad strength, trends favour staying invested"
	} else if share <= 0.4 {
		tone = "broad weakness, favour defensive positioning"
	}
	return fmt.Sprintf("**Market Outlook:** %s of %d analysed assets trade above their 20-day average: %s.", pct(share, 0), len(assets), tone)
}

func hedgeAnswer(req request) string {
	var b builder
	b.line("**Advanced Hedging Strategies**")
	b.blank()
	if !hasPositions(req.Portfolio) {
		b.line("No portfolio data available for hedging analysis.")
		b.blank()
	}
	b.line("**1. Equity Hedging:**")
	b.bullets("**Put Options:** Buy protective puts on major holdings", "**Inverse ETFs:** SPXS, SQQQ for market downturns", "**VIX Calls:** Hedge against volatility spikes", "**Sector Rotation:** Move to defensive sectors (utilities, consumer staples)")
	b.blank()
	b.line("**2. Currency Hedging:**")
	b.bullets("**Currency ETFs:** UUP (USD bullish), EUO (EUR bearish)", "**International Exposure:** Consider currency-hedged international funds")
	b.blank()
	b.line("**3. Interest Rate Hedging:**")
	b.bullets("**Treasury Bonds:** TLT for rate sensitivity", "**REITs:** Consider interest rate sensitivity", "**Bank Stocks:** Monitor rate environment impact")
	if hasPositions(req.Portfolio) {
		b.blank()
		b.line("**Portfolio-Specific Hedging:**")
		if c := portfolio.Concentration(req.Portfolio); c > 0.3 {
			b.bullets(fmt.Sprintf("**Concentration (%s):** Consider hedging your largest position", pct(c, 1)))
		} else {
			b.bullets("**Diversified:** A broad index hedge covers most of your exposure")
		}
	}
	b.blank()
	b.line("**Hedging Best Practices:**")
	b.bullets("Hedge 20-30% of portfolio value", "Use options for precise hedging", "Monitor hedge effectiveness regularly", "Consider cost vs. benefit of hedging")
	return b.String()
}

func sectorAnswer() string {
	var b builder
	b.line("**Sector Analysis & Rotation Strategy**")
	b.blank()
	b.line("**Sector Rotation Strategy:**")
	b.bullets("**Early Cycle:** Technology, Consumer Discretionary", "**Mid Cycle:** Industrials, Materials", "**Late Cycle:** Energy, Financials", "**Recession:** Utilities, Consumer Staples, Healthcare")
	b.blank()
	b.line("**Current Market Phase:** Mid-Cycle")
	b.blank()
	b.line("**Sector Recommendations:**")
	b.bullets(
		"**Technology:** Moderate allocation - focus on AI leaders",
		"**Healthcare:** Overweight - demographic trends supportive",
		"**Financials:** Underweight - interest rate sensitivity",
		"**Energy:** Neutral - volatile commodity prices",
		"**Consumer Staples:** Overweight - defensive positioning",
	)
	b.blank()
	b.line("**Thematic Investment Themes:**")
	b.bullets("**AI & Automation:** NVDA, MSFT, GOOGL", "**Clean Energy:** TSLA, ENPH, SEDG", "**Healthcare Innovation:** MRNA, BNTX, ILMN", "**Fintech:** SQ, PYPL, COIN")
	return b.String()
}

func optionsAnswer(req request) string {
	var b builder
	b.line("**Advanced Options Strategies**")
	b.blank()
	tickerSection(&b, req, "Options Strategies", func(a *dto.ScoredAsset) string {
		switch {
		case a.Score >= 70:
			return "**Bullish Strategies:**\n• Long calls for upside leverage\n• Covered calls for income\n• Bull call spreads for limited risk"
		case a.Score <= 30:
			return "**Bearish Strategies:**\n• Long puts for downside protection\n• Put spreads for limited risk\n• Short calls for income"
		default:
			return "**Neutral Strategies:**\n• Iron condors for range-bound markets\n• Straddles for volatility plays\n• Calendar spreads for time decay"
		}
	})
	b.line("**1. Income Strategies:**")
	b.bullets("**Covered Calls:** Sell calls on owned stock", "**Cash-Secured Puts:** Sell puts for premium", "**Iron Condors:** Range-bound income strategy")
	b.blank()
	b.line("**2. Directional Strategies:**")
	b.bullets("**Long Calls/Puts:** Leveraged directional bets", "**Call/Put Spreads:** Limited risk directional plays", "**Straddles:** Volatility plays")
	b.blank()
	b.line("**Options Risk Management:**")
	b.bullets("Never risk more than 5% of portfolio on options", "Use stop-losses on directional plays", "Monitor Greeks (Delta, Gamma, Theta, Vega)", "Close positions before expiration")
	return b.String()
}

func cryptoAnswer(req request) string {
	var b builder
	b.line("**Cryptocurrency Analysis**")
	b.blank()
	if strings.HasSuffix(req.ticker, "-USD") {
		tickerSection(&b, req, "Analysis", func(a *dto.ScoredAsset) string {
			return fmt.Sprintf("Score %.0f/100 (%s), 3M momentum %+.1f%%. High volatility asset class requiring careful position sizing and risk management.", a.Score, a.Recommendation, a.Momentum3M)
		})
	}
	b.line("**Crypto Investment Strategies:**")
	b.bullets("**HODL Strategy:** Long-term holding of major cryptos", "**DCA (Dollar-Cost Averaging):** Regular purchases", "**Swing Trading:** Technical analysis-based trading", "**Staking:** Earn rewards by holding certain cryptos")
	b.blank()
	b.line("**Crypto Risk Factors:**")
	b.bullets("**High Volatility:** Large daily swings possible", "**Regulatory Risk:** Government policy changes", "**Technology Risk:** Smart contract bugs, hacks", "**Market Manipulation:** Whale movements")
	b.blank()
	b.line("**Crypto Portfolio Allocation:**")
	b.bullets("**Conservative:** 1-5% of total portfolio", "**Moderate:** 5-10% of total portfolio", "**Aggressive:** 10-20% of total portfolio", "**Maximum Recommended:** 20% of total portfolio")
	return b.String()
}

func dcaAnswer(req request) string {
	var b builder
	b.line("**Dollar-Cost Averaging (DCA) Strategy**")
	b.blank()
	tickerSection(&b, req, "DCA Strategy", func(a *dto.ScoredAsset) string {
		if req.amount > 0 {
			return fmt.Sprintf("**DCA Strategy:** Invest %s weekly over 4 months for optimal dollar-cost averaging.", money(req.amount/4))
		}
		return "**DCA Strategy:** Split your budget into equal weekly purchases over 4 months."
	})
	b.line("**DCA Benefits:**")
	b.bullets("**Reduces Timing Risk:** No need to predict market movements", "**Emotional Discipline:** Removes emotion from investing", "**Lower Average Cost:** Buys more shares when prices are low", "**Consistent Investing:** Builds wealth over time")
	b.blank()
	b.line("**DCA Implementation:**")
	if req.amount > 0 {
		b.bullets("**Investment Amount:** "+money(req.amount), "**Weekly Investment:** "+money(req.amount/4), "**Monthly Investment:** "+money(req.amount))
	} else {
		b.bullets("**Recommended Amount:** 5-10% of monthly income", "**Frequency:** Weekly or monthly")
	}
	b.bullets("**Duration:** 6-24 months for optimal results", "**Automation:** Set up automatic investments")
	b.blank()
	b.line("**DCA vs Lump Sum:**")
	b.bullets("**DCA:** Better for volatile markets, reduces regret", "**Lump Sum:** Better for stable uptrending markets", "**Hybrid:** 50% lump sum + 50% DCA over 6 months")
	return b.String()
}

func tradingStyleAnswer(req request) string {
	var b builder
	b.line("**Trading Style Analysis**")
	b.blank()
	switch {
	case strings.Contains(req.lower, "day"):
		b.line("**Day Trading Strategy:**")
		b.bullets("**Timeframe:** Intraday (minutes to hours)", "**Risk Management:** 1-2% risk per trade", "**Key Indicators:** Volume, momentum, support/resistance", "**Best Assets:** High-volume stocks, ETFs", "**Capital Required:** $25,000+ (PDT rule)")
	case strings.Contains(req.lower, "swing"):
		b.line("**Swing Trading Strategy:**")
		b.bullets("**Timeframe:** Days to weeks", "**Risk Management:** 2-5% risk per trade", "**Key Indicators:** Technical patterns, moving averages", "**Best Assets:** Volatile stocks, sector ETFs", "**Capital Required:** $5,000+")
	default:
		b.line("**Scalping Strategy:**")
		b.bullets("**Timeframe:** Seconds to minutes", "**Risk Management:** 0.5-1% risk per trade", "**Key Indicators:** Level 2 data, order flow", "**Best Assets:** High-volume, tight spreads", "**Capital Required:** $10,000+")
	}
	b.blank()
	b.line("**Universal Risk Management:**")
	b.bullets("Never risk more than you can afford to lose", "Use stop-losses on every trade", "Keep detailed trading journal", "Continuously improve your strategy")
	return b.String()
}

func correlationAnswer(req request) string {
	var b builder
	b.line("**Portfolio Correlation Analysis**")
	b.blank()
	if !hasPositions(req.Portfolio) {
		b.line("No portfolio data available for correlation analysis.")
		b.blank()
		b.line("**Correlation Basics:**")
		b.bullets("**Positive Correlation:** Assets move together", "**Negative Correlation:** Assets move opposite", "**Zero Correlation:** Assets move independently", "**Goal:** Reduce correlation to lower portfolio risk")
		return b.String()
	}
	b.line("**Sector Exposure:**")
	for _, s := range sectorAllocation(req.Portfolio) {
		b.bullets(fmt.Sprintf("%s: %s", s.sector, pct(s.weight, 1)))
	}
	b.blank()
	b.line("**Diversification Opportunities:**")
	b.bullets("Add international stocks (lower correlation with US)", "Include bonds (negative correlation with stocks)", "Add commodities (low correlation with equities)", "Consider REITs (different correlation pattern)")
	return b.String()
}

func volatilityAnswer(req request) string {
	var b builder
	b.line("**Volatility Analysis & Strategies**")
	b.blank()
	b.line("**Current Volatility Environment:** %s", volatilityEnvironment(req.Assets))
	b.blank()
	b.line("**VIX (Fear Index) Analysis:**")
	b.bullets("**VIX < 20:** Low volatility, complacent market", "**VIX 20-30:** Normal volatility range", "**VIX > 30:** High volatility, fear in market", "**VIX > 40:** Extreme fear, potential buying opportunity")
	b.blank()
	b.line("**Volatility-Based Position Sizing:**")
	b.bullets("**High Volatility:** Reduce position sizes by 25-50%", "**Low Volatility:** Increase position sizes by 10-25%", "**Extreme Volatility:** Consider cash or defensive positions")
	return b.String()
}

// volatilityEnvironment reads the share of assets trading outside their Bollinger bands' inner range.
func volatilityEnvironment(assets []dto.ScoredAsset) string {
	if len(assets) == 0 {
		return "Moderate volatility with occasional spikes"
	}
	stretched := 0
	for _, a := range assets {
		if p := a.TechnicalIndicators.BBPosition; p < 0.2 || p > 0.8 {
			stretched++
		}
	}
	share := float64(stretched) / float64(len(assets))
	switch {
	case share > 0.5:
		return fmt.Sprintf("Elevated volatility, %s of assets near a Bollinger Band", pct(share, 0))
	case share > 0.25:
		return fmt.Sprintf("Moderate volatility, %s of assets near a Bollinger Band", pct(share, 0))
	default:
		return fmt.Sprintf("Calm markets, %s of assets near a Bollinger Band", pct(share, 0))
	}
}

func fundamentalsAnswer(req request) string {
	var b builder
	b.line("**Fundamental Analysis**")
	b.blank()
	tickerSection(&b, req, "Fundamental Analysis", func(a *dto.ScoredAsset) string {
		return fmt.Sprintf("Score %.0f/100 (%s) with %d top investors holding.", a.Score, a.Recommendation, a.NumExperts)
	})
	b.line("**Valuation Metrics:**")
	b.bullets("**P/E Ratio:** Price-to-earnings (lower is better)", "**P/B Ratio:** Price-to-book (lower is better)", "**PEG Ratio:** P/E to growth (1.0 is fair value)", "**EV/EBITDA:** Enterprise value to EBITDA")
	b.blank()
	b.line("**Financial Health:**")
	b.bullets("**Debt-to-Equity:** Lower is better", "**Current Ratio:** Liquidity measure", "**Free Cash Flow:** Cash generation ability", "**Dividend Yield:** Income component")
	return b.String()
}

func technicalAnswer(req request) string {
	var b builder
	b.line("**Technical Analysis**")
	b.blank()
	tickerSection(&b, req, "Technical Analysis", func(a *dto.ScoredAsset) string {
		ti := a.TechnicalIndicators
		return fmt.Sprintf("Trend %s, RSI %.0f, MACD %.2f vs signal %.2f, Bollinger position %.2f, volume ratio %.2f.",
			a.Trend, a.RSI, ti.MACD, ti.MACDSignal, ti.BBPosition, a.VolumeRatio)
	})
	b.line("**Key Technical Indicators:**")
	b.bullets("**Moving Averages:** SMA, EMA (trend direction)", "**MACD:** Momentum and trend changes", "**RSI:** Overbought/oversold conditions", "**Bollinger Bands:** Volatility envelopes", "**Volume:** Confirmation of price moves")
	return b.String()
}

func positionSizingAnswer(req request) string {
	if req.ticker == "" {
		return missingTicker("advanced position sizing")
	}
	if req.asset == nil {
		return unknownTicker(req.ticker)
	}

	var b builder
	kelly := KellyFraction()
	value := portfolioValue(req.Portfolio)
	if value == 0 && req.amount > 0 {
		value = req.amount
	}
	volAdjusted := 0.1 / defaultVol
	final := RecommendedSize(defaultVol)

	b.line("**Advanced Position Sizing for %s**", req.ticker)
	b.blank()
	b.line("**Kelly Criterion Analysis:**")
	b.bullets("**Optimal Kelly %:** "+pct(kelly, 1), "**Conservative Kelly:** "+pct(kelly*0.5, 1)+" (half Kelly)", "**Aggressive Kelly:** "+pct(kelly*1.5, 1)+" (1.5x Kelly)")
	b.blank()
	if hasPositions(req.Portfolio) {
		rp := 0.1 / float64(len(req.Portfolio.Positions))
		b.line("**Risk Parity Approach:**")
		b.bullets("**Risk Parity %:** "+pct(rp, 1), "**Risk Parity Amount:** "+money(value*rp))
		b.blank()
	}
	b.line("**Volatility-Based Sizing:**")
	b.bullets("**Vol-Adjusted %:** " + pct(volAdjusted, 1))
	b.blank()
	b.line("**Final Recommendation:**")
	b.bullets("**Recommended Position Size:** " + pct(final, 1))
	if value > 0 {
		b.bullets("**Recommended Dollar Amount:** " + money(value*final))
	}
	return b.String()
}

func timingAnswer(req request) string {
	if req.ticker == "" {
		return missingTicker("advanced timing")
	}
	if req.asset == nil {
		return unknownTicker(req.ticker)
	}
	var b builder
	b.line("**Advanced Timing Analysis for %s**", req.ticker)
	b.blank()
	b.line("**Current Setup:** %s at $%.2f, 1W %+.1f%%, 1M %+.1f%%, 3M %+.1f%%", req.asset.Recommendation, req.asset.Price, req.asset.Momentum1W, req.asset.Momentum1M, req.asset.Momentum3M)
	b.blank()
	b.line("**Advanced Entry Strategies:**")
	b.bullets("**Scale-in Approach:** Enter 1/3 now, 1/3 on pullback, 1/3 on breakout", "**Dollar-Cost Averaging:** Weekly purchases over 8-12 weeks", "**Technical Entry:** Wait for pullback to key support levels", "**Fundamental Entry:** Enter on earnings beat or positive guidance")
	b.blank()
	b.line("**Timing Risk Management:**")
	b.bullets("**Stop-Loss:** Set at 15-20% below entry", "**Take-Profit:** Scale out at 25%, 50%, 75% gains", "**Time Stop:** Exit if no progress in 3 months")
	return b.String()
}

func riskAnswer(req request) string {
	if req.ticker == "" {
		return missingTicker("a risk assessment")
	}
	if req.asset == nil {
		return unknownTicker(req.ticker)
	}
	var b builder
	b.line("**Advanced Risk Assessment for %s**", req.ticker)
	b.blank()
	b.line("**Signal Risk Level:** %s (%s, score %.0f/100)", req.asset.RiskLevel, req.asset.Recommendation, req.asset.Score)
	b.blank()
	b.line("**Risk Mitigation Strategies:**")
	b.bullets("**Position Sizing:** Limit to 5-10% of portfolio", "**Stop-Losses:** Use trailing stops", "**Hedging:** Consider put options", "**Diversification:** Don't concentrate in one sector", "**Monitoring:** Regular review of fundamentals")
	return b.String()
}

func analysisAnswer(req request) string {
	if req.ticker == "" {
		return missingTicker("the analysis")
	}
	if req.asset == nil {
		return unknownTicker(req.ticker)
	}
	a := req.asset
	var b builder
	b.line("**Advanced Analysis Explanation for %s**", req.ticker)
	b.blank()
	b.line("**Score: %.0f/100 - %s (%s confidence)**", a.Score, a.Recommendation, a.Confidence)
	b.blank()
	b.line("**Key Contributing Factors:**")
	reasons := a.Reasoning
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	b.bullets(reasons...)
	return b.String()
}

func portfolioAnswer(req request) string {
	var b builder
	b.line("**Advanced Portfolio Analysis & Optimization**")
	b.blank()
	if !hasPositions(req.Portfolio) {
		b.line("No portfolio data available. Import your Trading212 portfolio for advanced analysis!")
		b.blank()
		b.line("**Portfolio Optimization Principles:**")
		b.bullets("**Modern Portfolio Theory:** Maximize risk-adjusted returns", "**Factor Investing:** Target specific risk factors", "**Risk Parity:** Equal risk contribution from each asset", "**Black-Litterman:** Combine views with market equilibrium")
		return b.String()
	}
	p := req.Portfolio
	b.line("**Advanced Portfolio Metrics:**")
	b.bullets(
		"**Total Value:** "+money(portfolioValue(p)),
		fmt.Sprintf("**Number of Positions:** %d", len(p.Positions)),
		fmt.Sprintf("**Effective Number of Stocks:** %.1f", portfolio.EffectivePositions(p)),
		"**Portfolio Concentration:** "+pct(portfolio.Concentration(p), 1),
	)
	b.blank()
	b.line("**Risk Management:**")
	b.bullets("Maximum position size: 10%", "Maximum sector exposure: 25%", "Correlation limit: 0.7 between positions")
	return b.String()
}

func recommendationsAnswer(req request) string {
	if len(req.Assets) == 0 && len(req.Opportunities) == 0 {
		return "No market data available. Please refresh the data first."
	}
	if len(req.Opportunities) == 0 {
		return "No high-probability opportunities found. Market conditions may be challenging."
	}

	var b builder
	b.line("**🎯 TOP 3 PROFIT OPPORTUNITIES**")
	b.blank()
	for i, o := range req.Opportunities {
		b.line("**#%d. %s - %s**", i+1, o.Ticker, o.Name)
		b.line("💰 **Profit Target:** +%s (%.2f → %.2f)", pct(o.ProfitTarget, 0), o.EntryPrice, o.EntryPrice*(1+o.ProfitTarget))
		b.line("📊 **Probability:** %s | **Risk:** %s", pct(o.ProfitProbability, 0), pct(o.RiskLevel, 0))
		b.line("🎯 **Entry:** $%.2f | **Stop:** $%.2f | **Size:** %s", o.EntryPrice, o.StopLoss, pct(o.PositionSize, 0))
		b.line("⏰ **Timeline:** %s", o.Timeline)
		b.blank()
		if len(o.WhyThisWorks) > 0 {
			b.line("**Why This Works:**")
			b.bullets(firstN(o.WhyThisWorks, 3)...)
			b.blank()
		}
		if len(o.RiskFactors) > 0 {
			b.line("**Risk Factors:**")
			b.bullets(firstN(o.RiskFactors, 2)...)
			b.blank()
		}
	}
	b.line("**How to Use These Recommendations:**")
	b.bullets("Start with the highest probability opportunity", "Use the suggested position sizes", "Set stop losses as recommended", "Monitor progress according to timeline", "Consider your overall portfolio allocation")
	return b.String()
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
