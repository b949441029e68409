// Package store holds the live state shared by the copilot services.
//
// Every accessor takes the lock for a single read or write and returns copies.
// Callers doing read-modify-write sequences get last-write-wins semantics.
package store

import (
	"sync"
	"time"

	"golang-stock-copilot/internal/copilot/dto"
)

type Store struct {
	mu sync.RWMutex

	snapshot    *dto.MarketSnapshot
	portfolio   dto.Portfolio
	alerts      []dto.Alert
	nextAlertID int
	news        []dto.NewsItem
	newsAt      time.Time
}

func New() *Store {
	return &Store{nextAlertID: 1}
}

// SetSnapshot replaces the last analysed batch.
func (s *Store) SetSnapshot(snapshot dto.MarketSnapshot) {
	snapshot.Assets = append([]dto.ScoredAsset(nil), snapshot.Assets...)
	s.mu.Lock()
	s.snapshot = &snapshot
	s.mu.Unlock()
}

// Snapshot returns the last analysed batch, false when no cycle has completed.
func (s *Store) Snapshot() (dto.MarketSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return dto.MarketSnapshot{}, false
	}
	out := *s.snapshot
	out.Assets = append([]dto.ScoredAsset(nil), s.snapshot.Assets...)
	return out, true
}

// Assets returns the assets of the last batch, nil when none.
func (s *Store) Assets() []dto.ScoredAsset {
	snap, _ := s.Snapshot()
	return snap.Assets
}

func (s *Store) Portfolio() dto.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.portfolio
	out.Positions = append([]dto.Position(nil), s.portfolio.Positions...)
	return out
}

func (s *Store) SetPortfolio(p dto.Portfolio) {
	p.Positions = append([]dto.Position(nil), p.Positions...)
	s.mu.Lock()
	s.portfolio = p
	s.mu.Unlock()
}

func (s *Store) Alerts() []dto.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.Alert(nil), s.alerts...)
}

// AddAlert stores a and returns it with a freshly assigned id.
func (s *Store) AddAlert(a dto.Alert) dto.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.nextAlertID
	s.nextAlertID++
	s.alerts = append(s.alerts, a)
	return a
}

// UpdateAlert replaces the alert with the same id. It reports whether one was found.
func (s *Store) UpdateAlert(a dto.Alert) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == a.ID {
			s.alerts[i] = a
			return true
		}
	}
	return false
}

// DeleteAlert removes the alert with the given id.
func (s *Store) DeleteAlert(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return nil
		}
	}
	return dto.ErrAlertNotFound
}

// News returns the cached news list and when it was fetched.
func (s *Store) News() ([]dto.NewsItem, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]dto.NewsItem(nil), s.news...), s.newsAt
}

func (s *Store) SetNews(items []dto.NewsItem, at time.Time) {
	items = append([]dto.NewsItem(nil), items...)
	s.mu.Lock()
	s.news = items
	s.newsAt = at
	s.mu.Unlock()
}
