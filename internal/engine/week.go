package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/petalhq/petal/internal/store"
)

// DaySlot is one day of a week window: a date, a human label, and the
// record for that day if one exists. Petals holds the computed score (0 for
// an absent day).
type DaySlot struct {
	Date    string        `json:"date"`
	Label   string        `json:"label"`
	IsToday bool          `json:"is_today"`
	Record  *store.Record `json:"record,omitempty"`
	Petals  int           `json:"petals"`
}

// BuildWindow assembles the 7-day window ending at ref: ref-6 through ref,
// oldest first, always exactly 7 slots. Days with no record and days whose
// file is corrupt appear as empty slots; corrupt files are logged. The
// store is never mutated.
func BuildWindow(st *store.Store, ref time.Time) ([]DaySlot, error) {
	slots := make([]DaySlot, 0, 7)
	for back := 6; back >= 0; back-- {
		date := ref.AddDate(0, 0, -back).Format(store.DateLayout)

		rec, err := st.GetByDate(date)
		switch {
		case err == nil:
		case errors.Is(err, store.ErrNotFound):
			rec = nil
		case errors.Is(err, store.ErrCorrupt):
			log.Printf("week window: skipping corrupt log for %s: %v", date, err)
			rec = nil
		default:
			return nil, fmt.Errorf("build week window: %w", err)
		}

		slots = append(slots, DaySlot{
			Date:    date,
			Label:   dayLabel(back),
			IsToday: back == 0,
			Record:  rec,
			Petals:  Score(rec),
		})
	}
	return slots, nil
}

func dayLabel(back int) string {
	switch back {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", back)
	}
}

// WindowRange formats a window as a human-readable span, e.g.
// "June 4 – June 10".
func WindowRange(slots []DaySlot) string {
	if len(slots) == 0 {
		return ""
	}
	first, err := time.Parse(store.DateLayout, slots[0].Date)
	if err != nil {
		return ""
	}
	last, err := time.Parse(store.DateLayout, slots[len(slots)-1].Date)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s %d – %s %d", first.Month(), first.Day(), last.Month(), last.Day())
}
