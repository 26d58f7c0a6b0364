package engine

import "github.com/petalhq/petal/internal/store"

// Petal criteria. One point per satisfied criterion, seven criteria total.
// The mix of inclusive and strict comparisons is deliberate and must not be
// normalized.
const (
	sunlightPetalMin    = 10 // minutes, inclusive
	waterPetalOver      = 2  // liters, strict
	nutritionPetalCount = 3  // exactly this many entries
	movementPetalOver   = 30 // minutes, strict
	sleepPetalMin       = 7  // hours, inclusive
	mentalResetPetalMin = 5  // minutes, inclusive
)

// Score counts how many wellness criteria a day's record satisfies,
// returning an integer in [0,7]. A nil record (no data for the day) scores
// 0. Pure function of the seven criteria fields.
func Score(rec *store.Record) int {
	if rec == nil {
		return 0
	}

	petals := 0
	if rec.SunlightMinutes >= sunlightPetalMin {
		petals++
	}
	if rec.WaterLiters > waterPetalOver {
		petals++
	}
	if len(rec.Nutrition) == nutritionPetalCount {
		petals++
	}
	if rec.MovementMinutes > movementPetalOver {
		petals++
	}
	if rec.SleepHours >= sleepPetalMin {
		petals++
	}
	if rec.Social != nil && *rec.Social {
		petals++
	}
	if rec.MentalResetMinutes != nil && *rec.MentalResetMinutes >= mentalResetPetalMin {
		petals++
	}

	// Natural range is already 0..7; clamp anyway.
	if petals < 0 {
		petals = 0
	}
	if petals > 7 {
		petals = 7
	}
	return petals
}
