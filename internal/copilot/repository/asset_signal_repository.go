package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/entity"
)

const assetSignalBatchSize = 100

// AssetSignalRepository persists the per-ticker history of analysis cycles.
type AssetSignalRepository interface {
	CreateBatch(ctx context.Context, cycleID string, assets []dto.ScoredAsset) error
	History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error)
}

type assetSignalRepository struct {
	db *gorm.DB
}

func NewAssetSignalRepository(db *gorm.DB) AssetSignalRepository {
	return &assetSignalRepository{db: db}
}

func (r *assetSignalRepository) CreateBatch(ctx context.Context, cycleID string, assets []dto.ScoredAsset) error {
	if len(assets) == 0 {
		return nil
	}
	rows := make([]entity.AssetSignal, 0, len(assets))
	for _, a := range assets {
		indicators, err := json.Marshal(a.TechnicalIndicators)
		if err != nil {
			return fmt.Errorf("failed to marshal indicators for %s: %w", a.Ticker, err)
		}
		rows = append(rows, entity.AssetSignal{
			CycleID:        cycleID,
			Ticker:         a.Ticker,
			Sector:         a.Sector,
			Price:          a.Price,
			Score:          a.Score,
			Recommendation: a.Recommendation,
			Confidence:     a.Confidence,
			RiskLevel:      a.RiskLevel,
			Reasoning:      a.Reasoning,
			Indicators:     datatypes.JSON(indicators),
		})
	}
	return r.db.WithContext(ctx).CreateInBatches(rows, assetSignalBatchSize).Error
}

func (r *assetSignalRepository) History(ctx context.Context, ticker string, limit int) ([]dto.SignalHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	var rows []entity.AssetSignal
	err := r.db.WithContext(ctx).
		Where("ticker = ?", strings.ToUpper(ticker)).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dto.SignalHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SignalHistory{
			CycleID:        row.CycleID,
			Ticker:         row.Ticker,
			Score:          row.Score,
			Recommendation: row.Recommendation,
			Price:          row.Price,
			Reasoning:      row.Reasoning,
			CreatedAt:      row.CreatedAt,
		})
	}
	return out, nil
}
