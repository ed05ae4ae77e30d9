package store

import (
	"errors"
	"sync"
	"time"

	"github.com/weatherbuddy/weather-assistant/internal/weather"
)

var (
	// ErrNotFound is returned when no snapshot is available for a location.
	ErrNotFound = errors.New("no weather data for location")
)

// snapshotHistory holds a time-ordered list of results for one location.
type snapshotHistory struct {
	snapshots []weather.Current
}

// MemoryStore is a concurrency-safe in-memory store of recent weather
// results, fed by the background refresh job. Per-query results are always
// produced fresh; this store only backs the recent/history endpoints.
type MemoryStore struct {
	mu sync.RWMutex

	// key: canonical location name
	data map[string]*snapshotHistory

	maxHistory int           // max snapshots per location, <= 0 means unlimited
	maxAge     time.Duration // max snapshot age, <= 0 means unlimited
}

// NewMemoryStore creates a MemoryStore with optional retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*snapshotHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveSnapshot appends a result for a location and enforces retention.
func (s *MemoryStore) SaveSnapshot(location string, snapshot weather.Current) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[location]
	if !ok {
		history = &snapshotHistory{}
		s.data[location] = history
	}

	history.snapshots = append(history.snapshots, snapshot)

	if s.maxHistory > 0 && len(history.snapshots) > s.maxHistory {
		over := len(history.snapshots) - s.maxHistory
		history.snapshots = history.snapshots[over:]
	}

	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.snapshots); i++ {
			if !history.snapshots[i].Timestamp.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.snapshots) {
			history.snapshots = history.snapshots[i:]
		}
	}
}

// GetLatest returns the most recent snapshot for a location.
func (s *MemoryStore) GetLatest(location string) (weather.Current, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[location]
	if !ok || len(history.snapshots) == 0 {
		return weather.Current{}, ErrNotFound
	}
	return history.snapshots[len(history.snapshots)-1], nil
}

// Latest returns the newest snapshot for every tracked location.
func (s *MemoryStore) Latest() map[string]weather.Current {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]weather.Current, len(s.data))
	for loc, history := range s.data {
		if len(history.snapshots) == 0 {
			continue
		}
		out[loc] = history.snapshots[len(history.snapshots)-1]
	}
	return out
}

// GetRange returns all snapshots for a location between from and to,
// inclusive.
func (s *MemoryStore) GetRange(location string, from, to time.Time) ([]weather.Current, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[location]
	if !ok || len(history.snapshots) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Current
	for _, snap := range history.snapshots {
		if !snap.Timestamp.Before(from) && !snap.Timestamp.After(to) {
			result = append(result, snap)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}
