package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/mediahost"
)

const defaultPageSize = 10

// Store aggregates every resource list cache plus the dashboard snapshot.
// It is an explicit, injected container: nothing in this package holds
// module-level state.
type Store struct {
	Pages     *Entry[api.Page]
	Tracks    *Entry[api.Track]
	Playlists *Entry[api.Playlist]
	Images    *Entry[mediahost.Asset]
	Audios    *Entry[mediahost.Asset]

	mu        sync.RWMutex
	dashboard Dashboard
}

// New builds a Store with empty cache entries and the default page size.
func New() *Store {
	return NewSized(defaultPageSize)
}

// NewSized builds a Store whose list caches request pageSize items per fetch.
func NewSized(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Store{
		Pages:     NewEntry[api.Page](pageSize),
		Tracks:    NewEntry[api.Track](pageSize),
		Playlists: NewEntry[api.Playlist](pageSize),
		Images:    NewEntry[mediahost.Asset](pageSize),
		Audios:    NewEntry[mediahost.Asset](pageSize),
	}
}

// Dashboard is the latest dashboard data available to the UI.
type Dashboard struct {
	RecentPages         []api.Page
	TotalPages          int
	Health              api.HealthStatus
	HasHealth           bool
	LastError           error
	LastFetched         time.Time
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple
// consecutive refreshes.
func (d Dashboard) IsOffline() bool {
	return d.ConsecutiveFailures >= 2
}

// UpdateDashboard replaces the dashboard snapshot. When err is non-nil the
// previous data is kept but the error is recorded for visibility.
func (s *Store) UpdateDashboard(recent []api.Page, total int, health *api.HealthStatus, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.dashboard.LastError = err
		s.dashboard.ConsecutiveFailures++
		return
	}

	s.dashboard.RecentPages = cloneItems(recent)
	s.dashboard.TotalPages = total
	if health != nil {
		s.dashboard.Health = *health
		s.dashboard.HasHealth = true
	} else {
		s.dashboard.HasHealth = false
	}
	s.dashboard.LastError = nil
	s.dashboard.LastFetched = time.Now()
	s.dashboard.ConsecutiveFailures = 0
}

// DashboardStale reports whether the dashboard is due for a refresh.
func (s *Store) DashboardStale(cooldown time.Duration) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ShouldFetch(s.dashboard.LastFetched, cooldown)
}

// DashboardSnapshot returns a copy of the current dashboard state.
func (s *Store) DashboardSnapshot() Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.dashboard
	snap.RecentPages = cloneItems(s.dashboard.RecentPages)
	if s.dashboard.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.dashboard.LastError)
	}
	return snap
}
