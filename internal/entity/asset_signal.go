package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// AssetSignal is one scoring of a ticker by an analysis cycle.
type AssetSignal struct {
	ID             int64          `json:"id"`
	CycleID        string         `json:"cycle_id"`
	Ticker         string         `json:"ticker"`
	Sector         string         `json:"sector"`
	Price          float64        `json:"price"`
	Score          float64        `json:"score"`
	Recommendation string         `json:"recommendation"`
	Confidence     string         `json:"confidence"`
	RiskLevel      string         `json:"risk_level"`
	Reasoning      pq.StringArray `gorm:"type:text[]" json:"reasoning"`
	Indicators     datatypes.JSON `gorm:"type:jsonb" json:"indicators"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (AssetSignal) TableName() string {
	return "asset_signals"
}
