package common

const (
	RedisStreamAnalysisCompleted = "copilot.analysis.completed"

	RedisKeyMarketHistory = "market:history:%s:%s:%s"
	RedisKeyMarketQuote   = "market:quote:%s"
	RedisKeyAlertSent     = "copilot:alert:%s:%s"
)
