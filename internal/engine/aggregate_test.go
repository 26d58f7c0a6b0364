package engine

import (
	"math"
	"testing"
	"time"

	"github.com/petalhq/petal/internal/store"
)

func TestAggregateEmptyWeek(t *testing.T) {
	s := testStore(t)
	slots, err := BuildWindow(s, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildWindow: %v", err)
	}

	stats := Aggregate(slots)
	if stats.DaysLogged != 0 {
		t.Errorf("DaysLogged = %d, want 0", stats.DaysLogged)
	}
	if stats.AvgSleep != 0 || stats.AvgWater != 0 {
		t.Errorf("averages should be zero with no data: %+v", stats)
	}
	if stats.TotalActivities != 0 {
		t.Errorf("TotalActivities = %d, want 0", stats.TotalActivities)
	}
}

func TestAggregateTotalsAndAverages(t *testing.T) {
	day := func(date string, sunlight, water, movement, sleep float64, social bool, nutrition ...string) DaySlot {
		rec := &store.Record{
			Date:            date,
			SunlightMinutes: sunlight,
			WaterLiters:     water,
			MovementMinutes: movement,
			SleepHours:      sleep,
			Social:          &social,
			Nutrition:       nutrition,
		}
		return DaySlot{Date: date, Record: rec, Petals: Score(rec)}
	}

	window := []DaySlot{
		{Date: "2024-06-04"},
		{Date: "2024-06-05"},
		day("2024-06-06", 20, 3, 40, 8, true, "Tryptophan", "Greens", "Healthy Fats"),
		{Date: "2024-06-07"},
		day("2024-06-08", 10, 1, 20, 6, false, "Greens", "Berries"),
		{Date: "2024-06-09"},
		day("2024-06-10", 30, 2.5, 60, 7, true, "greens", "Nuts with Healthy Fats", "Oats"),
	}

	stats := Aggregate(window)

	if stats.DaysLogged != 3 {
		t.Errorf("DaysLogged = %d, want 3", stats.DaysLogged)
	}
	if stats.TotalSunlight != 60 {
		t.Errorf("TotalSunlight = %v, want 60", stats.TotalSunlight)
	}
	if stats.AvgSunlight != 20 {
		t.Errorf("AvgSunlight = %v, want 20", stats.AvgSunlight)
	}
	if math.Abs(stats.AvgSleep-7) > 1e-9 {
		t.Errorf("AvgSleep = %v, want 7", stats.AvgSleep)
	}
	if stats.SocialDays != 2 {
		t.Errorf("SocialDays = %d, want 2", stats.SocialDays)
	}
	// Distinct names: Tryptophan, Greens, Healthy Fats, Berries, greens,
	// Nuts with Healthy Fats, Oats. Variety counts exact strings.
	if stats.NutritionVariety != 7 {
		t.Errorf("NutritionVariety = %d, want 7", stats.NutritionVariety)
	}
	if !stats.HasTryptophan || !stats.HasGreens || !stats.HasHealthyFats {
		t.Errorf("presence flags = %v %v %v, want all true",
			stats.HasTryptophan, stats.HasGreens, stats.HasHealthyFats)
	}

	wantActivities := window[2].Petals + window[4].Petals + window[6].Petals
	if stats.TotalActivities != wantActivities {
		t.Errorf("TotalActivities = %d, want %d", stats.TotalActivities, wantActivities)
	}
}

func TestAggregateNutrientMatchIsCaseInsensitiveSubstring(t *testing.T) {
	rec := &store.Record{Date: "2024-06-10", Nutrition: []string{"TRYPTOPHAN-rich turkey"}}
	stats := Aggregate([]DaySlot{{Date: "2024-06-10", Record: rec}})

	if !stats.HasTryptophan {
		t.Errorf("HasTryptophan = false, want substring match")
	}
	if stats.HasGreens || stats.HasHealthyFats {
		t.Errorf("unexpected presence flags: %+v", stats)
	}
}
