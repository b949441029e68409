package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang-stock-copilot/internal/copilot/dto"
)

// SnapshotRepository keeps the last analysed batch in a JSON file.
type SnapshotRepository interface {
	Save(snapshot *dto.MarketSnapshot) error
	Load() (*dto.MarketSnapshot, error)
}

type snapshotRepository struct {
	path string
}

func NewSnapshotRepository(path string) SnapshotRepository {
	return &snapshotRepository{path: path}
}

// Save overwrites the snapshot file. Readers never observe a partial file.
func (r *snapshotRepository) Save(snapshot *dto.MarketSnapshot) error {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot file. A missing file yields dto.ErrNoMarketData.
func (r *snapshotRepository) Load() (*dto.MarketSnapshot, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, dto.ErrNoMarketData
		}
		return nil, err
	}
	var snapshot dto.MarketSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", r.path, err)
	}
	return &snapshot, nil
}
