package engine

import "strings"

// WeeklyStats summarizes a week window for the summarization layer. All
// averages are per logged day; when no days are logged the zero value is
// returned and callers should fall back to a motivational-only message.
type WeeklyStats struct {
	DaysLogged int `json:"days_logged"`

	TotalSunlight    float64 `json:"total_sunlight_minutes"`
	TotalWater       float64 `json:"total_water_liters"`
	TotalMovement    float64 `json:"total_movement_minutes"`
	TotalSleep       float64 `json:"total_sleep_hours"`
	TotalMentalReset float64 `json:"total_mental_reset_minutes"`

	AvgSunlight    float64 `json:"avg_sunlight_minutes"`
	AvgWater       float64 `json:"avg_water_liters"`
	AvgMovement    float64 `json:"avg_movement_minutes"`
	AvgSleep       float64 `json:"avg_sleep_hours"`
	AvgMentalReset float64 `json:"avg_mental_reset_minutes"`

	SocialDays       int  `json:"social_days"`
	NutritionVariety int  `json:"nutrition_variety"`
	HasTryptophan    bool `json:"has_tryptophan"`
	HasGreens        bool `json:"has_greens"`
	HasHealthyFats   bool `json:"has_healthy_fats"`

	// TotalActivities is the sum of per-day petal scores across the week.
	TotalActivities int `json:"total_activities"`
}

// Aggregate reduces a week window to summary statistics.
func Aggregate(window []DaySlot) WeeklyStats {
	var stats WeeklyStats
	seen := make(map[string]bool)

	for _, slot := range window {
		stats.TotalActivities += slot.Petals

		rec := slot.Record
		if rec == nil {
			continue
		}
		stats.DaysLogged++

		stats.TotalSunlight += rec.SunlightMinutes
		stats.TotalWater += rec.WaterLiters
		stats.TotalMovement += rec.MovementMinutes
		stats.TotalSleep += rec.SleepHours
		if rec.MentalResetMinutes != nil {
			stats.TotalMentalReset += *rec.MentalResetMinutes
		}
		if rec.Social != nil && *rec.Social {
			stats.SocialDays++
		}

		for _, item := range rec.Nutrition {
			if !seen[item] {
				seen[item] = true
				stats.NutritionVariety++
			}
			lower := strings.ToLower(item)
			if strings.Contains(lower, "tryptophan") {
				stats.HasTryptophan = true
			}
			if strings.Contains(lower, "greens") {
				stats.HasGreens = true
			}
			if strings.Contains(lower, "healthy fats") {
				stats.HasHealthyFats = true
			}
		}
	}

	if stats.DaysLogged > 0 {
		days := float64(stats.DaysLogged)
		stats.AvgSunlight = stats.TotalSunlight / days
		stats.AvgWater = stats.TotalWater / days
		stats.AvgMovement = stats.TotalMovement / days
		stats.AvgSleep = stats.TotalSleep / days
		stats.AvgMentalReset = stats.TotalMentalReset / days
	}
	return stats
}
