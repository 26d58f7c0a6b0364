package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	// ErrNotFound means no record is stored for the requested date.
	ErrNotFound = errors.New("log not found")
	// ErrCorrupt means a stored file exists but cannot be parsed.
	ErrCorrupt = errors.New("corrupt log file")
)

// Store persists wellness logs as one JSON file per calendar date under a
// flat directory. Files are named <YYYY-MM-DD>.json; anything else in the
// directory is ignored.
type Store struct {
	dir string
	mu  sync.RWMutex
	now func() time.Time
}

// DefaultDataDir returns the default log directory: ~/.petal/wellness_logs
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".petal", "wellness_logs"), nil
}

// Open creates the log directory if needed and returns a Store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

// Dir returns the directory this store reads and writes.
func (s *Store) Dir() string { return s.dir }

// SetClock overrides the timestamp source. Tests only.
func (s *Store) SetClock(now func() time.Time) { s.now = now }

func (s *Store) path(date string) string {
	return filepath.Join(s.dir, date+".json")
}

// Upsert writes the full record for rec.Date, replacing any prior content.
// On first write both timestamps are set to now; on update the original
// created_at is preserved and updated_at is refreshed. The returned bool is
// true when a new record was created.
func (s *Store) Upsert(rec Record) (Record, bool, error) {
	if !ValidDateKey(rec.Date) {
		return Record{}, false, fmt.Errorf("invalid date key %q", rec.Date)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	created := true
	if existing, err := s.read(rec.Date); err == nil {
		rec.CreatedAt = existing.CreatedAt
		created = false
	} else if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrCorrupt) {
		return Record{}, false, err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return Record{}, false, fmt.Errorf("encode log %s: %w", rec.Date, err)
	}
	if err := os.WriteFile(s.path(rec.Date), data, 0644); err != nil {
		return Record{}, false, fmt.Errorf("write log %s: %w", rec.Date, err)
	}
	return rec, created, nil
}

// GetByDate returns the record stored for date. Returns ErrNotFound when no
// file exists and a wrapped ErrCorrupt when the file cannot be parsed.
func (s *Store) GetByDate(date string) (*Record, error) {
	if !ValidDateKey(date) {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(date)
}

func (s *Store) read(date string) (*Record, error) {
	data, err := os.ReadFile(s.path(date))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read log %s: %w", date, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, date, err)
	}
	return &rec, nil
}

// List returns every parsable record, unordered, plus the date keys of files
// that exist but could not be parsed. A corrupt file never aborts the
// listing.
func (s *Store) List() ([]Record, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates, err := s.dates()
	if err != nil {
		return nil, nil, err
	}

	var records []Record
	var corrupt []string
	for _, date := range dates {
		rec, err := s.read(date)
		if errors.Is(err, ErrCorrupt) {
			corrupt = append(corrupt, date)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, *rec)
	}
	return records, corrupt, nil
}

// Dates returns the date keys of all stored files, unordered. Files whose
// names are not canonical dates are excluded.
func (s *Store) Dates() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dates()
}

func (s *Store) dates() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read log dir: %w", err)
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		date, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || !ValidDateKey(date) {
			continue
		}
		dates = append(dates, date)
	}
	return dates, nil
}

// Delete removes the record stored for date. Returns ErrNotFound when there
// is nothing to delete.
func (s *Store) Delete(date string) error {
	if !ValidDateKey(date) {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(date))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete log %s: %w", date, err)
	}
	return nil
}
