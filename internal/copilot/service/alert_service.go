package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/dto"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/common"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/telegram"
	"golang-stock-copilot/pkg/utils"
)

const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

// AlertService manages user alerts and notifies when they fire.
type AlertService interface {
	List() []dto.Alert
	Create(req dto.CreateAlertRequest) dto.Alert
	Delete(id int) error
	ActiveCount() int
	Evaluate(ctx context.Context, assets []dto.ScoredAsset) []dto.TriggeredAlert
}

type alertService struct {
	cfg      *config.Config
	store    *store.Store
	dedupe   repository.AlertDedupeRepository
	notifier telegram.Notifier
	logger   *logger.Logger
}

// NewAlertService builds the alert service. notifier may be nil, in which case nothing is sent.
func NewAlertService(cfg *config.Config, st *store.Store, dedupe repository.AlertDedupeRepository, notifier telegram.Notifier, log *logger.Logger) AlertService {
	return &alertService{cfg: cfg, store: st, dedupe: dedupe, notifier: notifier, logger: log}
}

func (s *alertService) List() []dto.Alert {
	return s.store.Alerts()
}

func (s *alertService) Create(req dto.CreateAlertRequest) dto.Alert {
	priority := req.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	return s.store.AddAlert(dto.Alert{
		Ticker:    strings.ToUpper(strings.TrimSpace(req.Ticker)),
		Type:      req.Type,
		Threshold: req.Threshold,
		Priority:  priority,
		CreatedAt: utils.Now(),
		Active:    true,
	})
}

func (s *alertService) Delete(id int) error {
	return s.store.DeleteAlert(id)
}

func (s *alertService) ActiveCount() int {
	n := 0
	for _, a := range s.store.Alerts() {
		if a.Active {
			n++
		}
	}
	return n
}

// Evaluate checks every active alert against the batch and sends notifications for
// triggered alerts and urgent signals. Repeat notifications inside the dedupe window are dropped.
func (s *alertService) Evaluate(ctx context.Context, assets []dto.ScoredAsset) []dto.TriggeredAlert {
	byTicker := make(map[string]dto.ScoredAsset, len(assets))
	for _, a := range assets {
		byTicker[a.Ticker] = a
	}

	now := utils.Now()
	var triggered []dto.TriggeredAlert
	for _, alert := range s.store.Alerts() {
		if !alert.Active {
			continue
		}
		asset, ok := byTicker[alert.Ticker]
		if !ok {
			continue
		}
		value, fired := Check(alert, asset)
		if !fired {
			continue
		}
		alert.TriggeredAt = &now
		alert.LastValue = value
		s.store.UpdateAlert(alert)
		triggered = append(triggered, dto.TriggeredAlert{Alert: alert, Value: value})

		key := fmt.Sprintf(common.RedisKeyAlertSent, fmt.Sprint(alert.ID), alert.Ticker)
		if s.claim(ctx, key) {
			s.send(ctx, telegram.FormatAlertMessage(alert, value, now))
		}
	}

	if s.cfg.Alerts.NotifyUrgent {
		var fresh []dto.ScoredAsset
		for _, a := range UrgentSignals(assets, s.cfg.Alerts.UrgentThreshold) {
			if s.claim(ctx, fmt.Sprintf(common.RedisKeyAlertSent, PriorityUrgent, a.Ticker)) {
				fresh = append(fresh, a)
			}
		}
		for _, msg := range telegram.FormatUrgentSignals(fresh, now) {
			s.send(ctx, msg)
		}
	}

	if len(triggered) > 0 {
		s.logger.InfoContext(ctx, "Alerts triggered", logger.IntField("count", len(triggered)))
	}
	return triggered
}

func (s *alertService) claim(ctx context.Context, key string) bool {
	if s.notifier == nil || s.dedupe == nil {
		return false
	}
	ok, err := s.dedupe.Acquire(ctx, key, s.cfg.Alerts.DedupeWindow)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to claim alert key", logger.StringField("key", key), logger.ErrorField(err))
		return false
	}
	return ok
}

func (s *alertService) send(ctx context.Context, text string) {
	if err := s.notifier.SendMessage(ctx, text); err != nil {
		s.logger.ErrorContext(ctx, "Failed to send telegram message", logger.ErrorField(err))
	}
}

// Check reports the observed value and whether alert fires for asset.
func Check(alert dto.Alert, asset dto.ScoredAsset) (float64, bool) {
	switch alert.Type {
	case dto.AlertTypePriceAbove:
		return asset.Price, asset.Price >= alert.Threshold
	case dto.AlertTypePriceBelow:
		return asset.Price, asset.Price <= alert.Threshold
	case dto.AlertTypeScoreAbove:
		return asset.Score, asset.Score >= alert.Threshold
	case dto.AlertTypeScoreBelow:
		return asset.Score, asset.Score <= alert.Threshold
	default:
		return 0, false
	}
}

// UrgentSignals returns the assets scoring at least threshold, highest score first.
func UrgentSignals(assets []dto.ScoredAsset, threshold float64) []dto.ScoredAsset {
	out := make([]dto.ScoredAsset, 0)
	for _, a := range assets {
		if a.Score >= threshold {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
