package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/weatherbuddy/weather-assistant/internal/store"
	"github.com/weatherbuddy/weather-assistant/internal/weather"
)

// Fetcher is the part of the weather service the scheduler needs.
type Fetcher interface {
	CurrentWeather(ctx context.Context, location string) weather.Current
}

// Scheduler periodically refreshes current weather for favorite locations
// so the recent endpoints have warm data.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Fetcher
	store     *store.MemoryStore
	locations []string
	interval  time.Duration
}

// New creates a Scheduler over the given favorite locations.
func New(locations []string, interval time.Duration, service Fetcher, memStore *store.MemoryStore) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		store:     memStore,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no favorite locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	if _, err := s.scheduler.Every(minutes).Minutes().Do(s.refreshAll); err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// refreshAll fetches current weather for every favorite location in
// parallel and stores the successful results.
func (s *Scheduler) refreshAll() {
	log.Println("scheduler: running weather refresh job")

	var wg sync.WaitGroup
	for _, loc := range s.locations {
		loc := loc
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			result := s.service.CurrentWeather(ctx, loc)
			if !result.Success {
				log.Printf("scheduler: refresh failed for %s: %s", loc, result.Message)
				return
			}
			s.store.SaveSnapshot(result.Location, result)
		}()
	}
	wg.Wait()
	log.Println("scheduler: completed weather refresh job")
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
