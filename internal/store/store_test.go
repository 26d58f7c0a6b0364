package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func testRecord(date string) Record {
	return Record{
		Date:            date,
		SunlightMinutes: 15,
		WaterLiters:     2.5,
		MovementMinutes: 35,
		SleepHours:      7.5,
		Mood:            "calm",
		Nutrition:       []string{"Tryptophan", "Greens", "Healthy Fats"},
	}
}

func TestUpsertThenGet(t *testing.T) {
	s := testStore(t)

	stored, created, err := s.Upsert(testRecord("2024-06-10"))
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Errorf("created = false, want true for first write")
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Errorf("timestamps not set: created=%v updated=%v", stored.CreatedAt, stored.UpdatedAt)
	}

	got, err := s.GetByDate("2024-06-10")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.Date != "2024-06-10" {
		t.Errorf("Date = %q, want 2024-06-10", got.Date)
	}
	if got.SunlightMinutes != 15 || got.WaterLiters != 2.5 {
		t.Errorf("fields lost on round trip: %+v", got)
	}
	if len(got.Nutrition) != 3 || got.Nutrition[0] != "Tryptophan" {
		t.Errorf("nutrition order lost: %v", got.Nutrition)
	}
}

func TestUpsertPreservesCreatedAt(t *testing.T) {
	s := testStore(t)

	clock := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	s.SetClock(func() time.Time { return clock })

	first, created, err := s.Upsert(testRecord("2024-06-10"))
	if err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if !created {
		t.Errorf("created = false, want true")
	}

	clock = clock.Add(3 * time.Hour)
	rec := testRecord("2024-06-10")
	rec.WaterLiters = 3
	second, created, err := s.Upsert(rec)
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}
	if created {
		t.Errorf("created = true, want false for rewrite")
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("CreatedAt = %v, want preserved %v", second.CreatedAt, first.CreatedAt)
	}
	if second.UpdatedAt.Before(first.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v < %v", second.UpdatedAt, first.UpdatedAt)
	}

	got, err := s.GetByDate("2024-06-10")
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if got.WaterLiters != 3 {
		t.Errorf("WaterLiters = %v, want full overwrite with 3", got.WaterLiters)
	}
}

func TestGetByDateNotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.GetByDate("2024-06-10")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestGetByDateCorrupt(t *testing.T) {
	s := testStore(t)

	if err := os.WriteFile(filepath.Join(s.Dir(), "2024-06-10.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	_, err := s.GetByDate("2024-06-10")
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("err = %v, want ErrCorrupt", err)
	}
}

func TestListSkipsCorrupt(t *testing.T) {
	s := testStore(t)

	if _, _, err := s.Upsert(testRecord("2024-06-09")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if _, _, err := s.Upsert(testRecord("2024-06-10")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "2024-06-08.json"), []byte("garbage"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	records, corrupt, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
	if len(corrupt) != 1 || corrupt[0] != "2024-06-08" {
		t.Errorf("corrupt = %v, want [2024-06-08]", corrupt)
	}
}

func TestListIgnoresNonDateFiles(t *testing.T) {
	s := testStore(t)

	if _, _, err := s.Upsert(testRecord("2024-06-10")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	for _, name := range []string{"notes.json", "2024-6-1.json", "backup.txt", "2024-13-40.json"} {
		if err := os.WriteFile(filepath.Join(s.Dir(), name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	dates, err := s.Dates()
	if err != nil {
		t.Fatalf("Dates: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2024-06-10" {
		t.Errorf("Dates = %v, want [2024-06-10]", dates)
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	if _, _, err := s.Upsert(testRecord("2024-06-10")); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := s.Delete("2024-06-10"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.GetByDate("2024-06-10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete err = %v, want ErrNotFound", err)
	}
	if err := s.Delete("2024-06-10"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestUpsertRejectsBadDateKey(t *testing.T) {
	s := testStore(t)

	for _, date := range []string{"", "today", "2024-6-1", "2024-13-01", "../../etc/passwd"} {
		rec := testRecord("2024-06-10")
		rec.Date = date
		if _, _, err := s.Upsert(rec); err == nil {
			t.Errorf("Upsert(%q) succeeded, want error", date)
		}
	}
}

func TestValidDateKey(t *testing.T) {
	valid := []string{"2024-06-10", "2000-01-01", "2024-02-29"}
	for _, d := range valid {
		if !ValidDateKey(d) {
			t.Errorf("ValidDateKey(%q) = false, want true", d)
		}
	}

	invalid := []string{"", "2024-6-10", "2024-06-1", "2024-13-01", "2023-02-29", "20240610", "2024/06/10", "2024-06-10x"}
	for _, d := range invalid {
		if ValidDateKey(d) {
			t.Errorf("ValidDateKey(%q) = true, want false", d)
		}
	}
}
