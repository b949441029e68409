package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, "yahoo_chart", cfg.MarketData.Provider)
	assert.Equal(t, 100, cfg.Analysis.SampleSize)
	assert.Equal(t, "3mo", cfg.Analysis.Range)
	assert.Equal(t, "*/5 * * * *", cfg.Refresh.Cron)
	assert.Equal(t, "live_trading_signals.json", cfg.Snapshot.Path)
	assert.Equal(t, 85.0, cfg.Alerts.UrgentThreshold)
	assert.Equal(t, 10*time.Second, cfg.MarketData.RequestTimeout)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: copilot-test
api:
  port: 9090
analysis:
  sample_size: 25
refresh:
  enabled: true
  cron: "0 * * * *"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "copilot-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, 25, cfg.Analysis.SampleSize)
	assert.True(t, cfg.Refresh.Enabled)
	assert.Equal(t, "0 * * * *", cfg.Refresh.Cron)
	assert.Equal(t, "1d", cfg.Analysis.Interval)
}
