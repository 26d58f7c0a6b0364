package engine

import (
	"log"
	"time"

	"github.com/petalhq/petal/internal/store"
)

// Sweeper deletes logs older than the rolling 7-day window. It owns its
// timer: Start runs one synchronous sweep and then re-arms itself for the
// configured hour-of-day after every run, so drift and clock changes don't
// compound.
type Sweeper struct {
	store  *store.Store
	hour   int
	now    func() time.Time
	stopCh chan struct{}
}

// NewSweeper creates a Sweeper that fires daily at the given hour (0-23,
// local time).
func NewSweeper(st *store.Store, hour int) *Sweeper {
	return &Sweeper{
		store:  st,
		hour:   hour,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// SetClock overrides the time source. Tests only.
func (s *Sweeper) SetClock(now func() time.Time) { s.now = now }

// RunCleanup deletes every stored record dated strictly before ref-6 days
// and returns how many records were deleted and kept. Retention keeps ref
// plus the 6 preceding days. Individual delete failures are logged and do
// not abort the sweep; malformed keys are never scanned (the store excludes
// them).
func (s *Sweeper) RunCleanup(ref time.Time) (deleted, kept int) {
	// Zero-padded date strings compare lexicographically in date order.
	cutoff := ref.AddDate(0, 0, -6).Format(store.DateLayout)

	dates, err := s.store.Dates()
	if err != nil {
		log.Printf("retention: list logs: %v", err)
		return 0, 0
	}

	for _, date := range dates {
		if date >= cutoff {
			kept++
			continue
		}
		if err := s.store.Delete(date); err != nil {
			log.Printf("retention: delete %s: %v", date, err)
			continue
		}
		deleted++
	}

	if deleted > 0 {
		log.Printf("retention: deleted %d old logs, kept %d", deleted, kept)
	}
	return deleted, kept
}

// Start runs one sweep immediately, then sweeps daily at the configured
// hour until Stop is called.
func (s *Sweeper) Start() {
	s.RunCleanup(s.now())

	go func() {
		for {
			next := s.nextRun(s.now())
			timer := time.NewTimer(next.Sub(s.now()))
			select {
			case <-timer.C:
				s.RunCleanup(s.now())
			case <-s.stopCh:
				timer.Stop()
				return
			}
		}
	}()
}

// Stop shuts down the recurring sweep.
func (s *Sweeper) Stop() {
	close(s.stopCh)
}

// nextRun returns the next occurrence of the configured hour strictly after
// now.
func (s *Sweeper) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
