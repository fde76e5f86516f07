package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/store"
)

// HousekeepingService periodically deletes expired password reset tokens.
// The reset flow already ignores them; this only bounds table growth.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Clock    func() time.Time

	// Internal channels for lifecycle management
	mu       sync.Mutex
	started  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
// Start after Stop is a no-op.
func (s *HousekeepingService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stopCh:
		return
	default:
	}
	if s.started {
		return
	}
	s.started = true

	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down and waits for an in-progress sweep to finish.
// It is safe to call more than once, and without a prior Start.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		close(s.stopCh)
		started := s.started
		s.mu.Unlock()

		if !started {
			return
		}
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs a single sweep and returns the number of rows removed.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	now := time.Now()
	if s.Clock != nil {
		now = s.Clock()
	}

	n, err := s.Store.PasswordResets().DeleteExpiredPasswordResetTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired password reset tokens", "error", err)
		return 0
	}

	s.Logger.Debug("housekeeping cleanup completed", "deleted_reset_tokens", n)
	return n
}
