package engine

import (
	"fmt"
	"strings"

	"github.com/petalhq/petal/internal/store"
)

// Submission is a client-supplied day log before validation. Required
// numeric fields are pointers so a missing field is distinguishable from a
// zero value.
type Submission struct {
	Date               *string  `json:"date"`
	SunlightMinutes    *float64 `json:"sunlight_minutes"`
	WaterLiters        *float64 `json:"water_liters"`
	MovementMinutes    *float64 `json:"movement_minutes"`
	SleepHours         *float64 `json:"sleep_hours"`
	MentalResetMinutes *float64 `json:"mental_reset_minutes"`
	Social             *bool    `json:"social"`
	Mood               *string  `json:"mood"`
	Nutrition          []string `json:"nutrition"`
}

// Violation names one field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found in a submission.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	fields := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		fields[i] = v.Field
	}
	return "invalid log submission: " + strings.Join(fields, ", ")
}

// Validate checks a submission against field presence and range rules.
// Returns nil when the submission is acceptable, otherwise a
// *ValidationError listing every violation. No side effects.
func Validate(sub Submission) error {
	var violations []Violation

	required := []struct {
		name    string
		present bool
	}{
		{"date", sub.Date != nil},
		{"sunlight_minutes", sub.SunlightMinutes != nil},
		{"water_liters", sub.WaterLiters != nil},
		{"movement_minutes", sub.MovementMinutes != nil},
		{"sleep_hours", sub.SleepHours != nil},
	}
	var missing []string
	for _, f := range required {
		if !f.present {
			missing = append(missing, f.name)
		}
	}
	for _, name := range missing {
		violations = append(violations, Violation{
			Field:   name,
			Message: "required field is missing",
		})
	}

	if sub.Date != nil && !store.ValidDateKey(*sub.Date) {
		violations = append(violations, Violation{
			Field:   "date",
			Message: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", *sub.Date),
		})
	}

	ranges := []struct {
		name     string
		val      *float64
		min, max float64
	}{
		{"sunlight_minutes", sub.SunlightMinutes, 0, 1440},
		{"water_liters", sub.WaterLiters, 0, 20},
		{"movement_minutes", sub.MovementMinutes, 0, 1440},
		{"sleep_hours", sub.SleepHours, 0, 24},
		{"mental_reset_minutes", sub.MentalResetMinutes, 0, 1440},
	}
	for _, r := range ranges {
		if r.val == nil {
			continue
		}
		if *r.val < r.min || *r.val > r.max {
			violations = append(violations, Violation{
				Field:   r.name,
				Message: fmt.Sprintf("invalid value %v, want %v-%v", *r.val, r.min, r.max),
			})
		}
	}

	if violations == nil {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// Record converts a validated submission into a storable record. Timestamps
// are left zero; the store owns them.
func (sub Submission) Record() store.Record {
	rec := store.Record{
		MentalResetMinutes: sub.MentalResetMinutes,
		Social:             sub.Social,
		Nutrition:          sub.Nutrition,
	}
	if sub.Date != nil {
		rec.Date = *sub.Date
	}
	if sub.SunlightMinutes != nil {
		rec.SunlightMinutes = *sub.SunlightMinutes
	}
	if sub.WaterLiters != nil {
		rec.WaterLiters = *sub.WaterLiters
	}
	if sub.MovementMinutes != nil {
		rec.MovementMinutes = *sub.MovementMinutes
	}
	if sub.SleepHours != nil {
		rec.SleepHours = *sub.SleepHours
	}
	if sub.Mood != nil {
		rec.Mood = *sub.Mood
	}
	return rec
}
