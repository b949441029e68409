package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"golang-stock-copilot/internal/copilot/config"
	delivery "golang-stock-copilot/internal/copilot/delivery/http"
	_ "golang-stock-copilot/internal/copilot/docs"
	"golang-stock-copilot/pkg/logger"
	"golang-stock-copilot/pkg/utils"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the copilot API and the background refresh loop",
	Run:   runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [TICKER...]",
	Short: "Runs one analysis cycle, or analyses the given tickers, and prints a table",
	Run:   runAnalyze,
}

func setup() (*config.Config, *logger.Logger) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := utils.SetLocation(cfg.Location); err != nil {
		log.Printf("Unknown location %q, using UTC: %v", cfg.Location, err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := setup()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Copilot Service", logger.Field("name", cfg.App.Name))

	a, err := newApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", logger.ErrorField(err))
	}
	defer a.Close()

	utils.GoSafe(func() { a.refresher.Start(ctx) })

	e := delivery.NewServer(delivery.Handlers{
		Market:    delivery.NewMarketHandler(a.market, a.opportunities, a.news, a.refresher, appLogger),
		Asset:     delivery.NewAssetHandler(a.analysis, appLogger),
		Portfolio: delivery.NewPortfolioHandler(a.portfolio, appLogger),
		Alert:     delivery.NewAlertHandler(a.alerts, appLogger),
		Chatbot:   delivery.NewChatbotHandler(a.chatbot, appLogger),
		Health:    delivery.NewHealthHandler(a.refresher),
	}, cfg.API.StaticDir, appLogger)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}
	appLogger.Info("Server exiting")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := setup()
	defer func() { _ = appLogger.Sync() }()

	a, err := newApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize application", logger.ErrorField(err))
	}
	defer a.Close()

	if len(args) > 0 {
		fmt.Println(renderTickers(ctx, a, args))
		return
	}

	snap, err := a.analysis.RunCycle(ctx)
	if err != nil {
		appLogger.Fatal("Analysis cycle failed", logger.ErrorField(err))
	}
	fmt.Println(renderSnapshot(snap))
	fmt.Println(renderOpportunities(a.opportunities.Top()))
}

// @title Stock Copilot API
// @version 1.0
// @description Market scoring, opportunities, portfolio, alerts and chatbot endpoints.
// @BasePath /api
func main() {
	rootCmd := &cobra.Command{Use: "copilot-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-copilot.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd, analyzeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing copilot-service CLI: %s\n", err)
		os.Exit(1)
	}
}
