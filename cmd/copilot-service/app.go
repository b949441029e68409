package main

import (
	"context"
	"fmt"

	"golang-stock-copilot/internal/copilot/config"
	"golang-stock-copilot/internal/copilot/repository"
	"golang-stock-copilot/internal/copilot/service"
	"golang-stock-copilot/internal/copilot/store"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/postgres"
	"golang-stock-copilot/pkg/redis"
	"golang-stock-copilot/pkg/telegram"
)

// app holds the wired services and the resources that must be released on exit.
type app struct {
	cfg    *config.Config
	logger *logger.Logger
	store  *store.Store

	analysis      service.AnalysisService
	alerts        service.AlertService
	market        service.MarketService
	opportunities service.OpportunityService
	portfolio     service.PortfolioService
	news          service.NewsService
	chatbot       service.ChatbotService
	refresher     service.RefreshScheduler

	closers []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("Failed to release resource", logger.ErrorField(err))
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: appLogger, store: store.New()}

	// Optional Postgres for signal history
	var signals repository.AssetSignalRepository
	if cfg.Database.Enabled {
		db, err := postgres.NewDB(postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			TimeZone:        cfg.Database.TimeZone,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
			LogLevel:        cfg.Database.LogLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		signals = repository.NewAssetSignalRepository(db.DB)
	}

	// Optional Redis for the L2 cache, alert dedupe and cycle events
	var redisClient *redis.Client
	var events repository.CycleEventRepository
	dedupe := repository.NewInMemoryAlertDedupeRepository()
	if cfg.Redis.Enabled {
		client, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		redisClient = client
		dedupe = repository.NewRedisAlertDedupeRepository(client)
		events = repository.NewRedisCycleEventRepository(client, cfg.Redis.StreamMaxLen)
	}

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		n, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Telegram disabled", logger.ErrorField(err))
		} else {
			notifier = n
		}
	}

	var ai repository.AIRepository
	if cfg.AI.Enabled {
		client, err := repository.NewGenAIClient(ctx, cfg)
		if err != nil {
			appLogger.Warn("Gemini disabled, chatbot uses templates only", logger.ErrorField(err))
		} else {
			ai = repository.NewGeminiAIRepository(cfg, appLogger, client)
		}
	}

	upstream, err := repository.NewMarketDataRepository(cfg, appLogger)
	if err != nil {
		a.Close()
		return nil, err
	}
	marketData := repository.NewCachedMarketDataRepository(upstream, cfg, redisClient, appLogger)
	snapshots := repository.NewSnapshotRepository(cfg.Snapshot.Path)

	if snap, err := snapshots.Load(); err == nil {
		a.store.SetSnapshot(*snap)
		appLogger.Info("Restored last snapshot", logger.IntField("assets", len(snap.Assets)))
	}

	a.alerts = service.NewAlertService(cfg, a.store, dedupe, notifier, appLogger)
	a.analysis = service.NewAnalysisService(cfg, service.AnalysisDeps{
		MarketData: marketData,
		Snapshots:  snapshots,
		Signals:    signals,
		Events:     events,
		Alerts:     a.alerts,
	}, a.store, appLogger)
	a.market = service.NewMarketService(a.store, a.alerts)
	a.opportunities = service.NewOpportunityService(a.store)
	a.portfolio = service.NewPortfolioService(a.store, marketData, appLogger)
	a.news = service.NewNewsService(cfg, repository.NewRSSNewsRepository(appLogger), a.store, appLogger)
	a.chatbot = service.NewChatbotService(cfg, a.store, a.opportunities, ai, appLogger)

	a.refresher, err = service.NewRefreshScheduler(cfg, a.analysis, a.news, appLogger)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}
