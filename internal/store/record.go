package store

import "time"

// Record is one day's wellness log. The date string is the storage key:
// exactly one record exists per date.
type Record struct {
	Date               string    `json:"date"`
	SunlightMinutes    float64   `json:"sunlight_minutes"`
	WaterLiters        float64   `json:"water_liters"`
	MovementMinutes    float64   `json:"movement_minutes"`
	SleepHours         float64   `json:"sleep_hours"`
	MentalResetMinutes *float64  `json:"mental_reset_minutes,omitempty"`
	Social             *bool     `json:"social,omitempty"`
	Mood               string    `json:"mood,omitempty"`
	Nutrition          []string  `json:"nutrition,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DateLayout is the canonical key format. Zero-padded ISO dates sort
// lexicographically in chronological order, which retention relies on.
const DateLayout = "2006-01-02"

// ValidDateKey reports whether s is a canonical YYYY-MM-DD date string.
// Anything else is not a valid record key for this store.
func ValidDateKey(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	// Parse is lenient about some non-canonical forms; round-trip to be sure.
	return t.Format(DateLayout) == s
}
