package llm

import (
	"fmt"
	"strings"

	"github.com/petalhq/petal/internal/engine"
	"github.com/petalhq/petal/internal/store"
)

// DaySummaryPrompt generates the prompt for a single day's wellness
// summary.
func DaySummaryPrompt(rec *store.Record) string {
	nutrition := "None logged"
	if len(rec.Nutrition) > 0 {
		nutrition = strings.Join(rec.Nutrition, ", ")
	}
	social := "No"
	if rec.Social != nil && *rec.Social {
		social = "Yes"
	}
	mentalReset := 0.0
	if rec.MentalResetMinutes != nil {
		mentalReset = *rec.MentalResetMinutes
	}
	mood := rec.Mood
	if mood == "" {
		mood = "Not specified"
	}

	return fmt.Sprintf(`You are a kind and observant wellness assistant. The user has logged their daily well-being activities for %s. Your job is to:
1. Highlight 2-3 things they did well.
2. Gently mention anything important they might have missed or done less of (especially sleep, sunlight, hydration, or mental reset).
3. If any of the following nutrition items are missing - Tryptophan, Greens, Healthy Fats - raise a gentle concern and mention about them without fail. If all three are present, simply acknowledge it positively.
4. Offer one small, encouraging tip for tomorrow to improve on things they might have missed or done less.

Here's the log:
- Sunlight: %g minutes
- Water Intake: %g liters
- Nutrition: %s
- Movement: %g minutes
- Sleep: %g hours
- Social Interaction: %s
- Mental Reset: %g minutes
- Mood: %s

Respond in a warm and friendly tone.`,
		rec.Date, rec.SunlightMinutes, rec.WaterLiters, nutrition,
		rec.MovementMinutes, rec.SleepHours, social, mentalReset, mood)
}

// WeekSummaryPrompt generates the prompt for a full week analysis. When no
// days are logged it asks for a motivational message instead of statistics.
func WeekSummaryPrompt(stats engine.WeeklyStats, window []engine.DaySlot) string {
	if stats.DaysLogged == 0 {
		return `You are a kind and encouraging wellness assistant. The user hasn't logged any wellness data this week yet. Please provide a gentle, motivating message about starting their wellness journey and the benefits of consistent daily logging. Keep it warm and supportive, focusing on the positive impact of beginning to track their wellness activities.`
	}

	yesNo := func(present bool) string {
		if present {
			return "Yes"
		}
		return "Missing"
	}

	var breakdown []string
	for _, slot := range window {
		rec := slot.Record
		if rec == nil {
			continue
		}
		nutrition := "None"
		if len(rec.Nutrition) > 0 {
			nutrition = strings.Join(rec.Nutrition, ", ")
		}
		social := "No"
		if rec.Social != nil && *rec.Social {
			social = "Yes"
		}
		mentalReset := 0.0
		if rec.MentalResetMinutes != nil {
			mentalReset = *rec.MentalResetMinutes
		}
		mood := rec.Mood
		if mood == "" {
			mood = "Not specified"
		}
		breakdown = append(breakdown, fmt.Sprintf(
			"%s: Sunlight: %gmin, Water: %gL, Movement: %gmin, Sleep: %gh, Social: %s, Mental Reset: %gmin, Nutrition: %s, Mood: %s",
			rec.Date, rec.SunlightMinutes, rec.WaterLiters, rec.MovementMinutes,
			rec.SleepHours, social, mentalReset, nutrition, mood))
	}

	return fmt.Sprintf(`You are a comprehensive wellness coach analyzing a full week of wellness data. The user has logged %d out of 7 days this week (%s).

Your analysis should include:
1. Weekly Consistency: Comment on their logging consistency and overall patterns
2. Strengths: Highlight 3-4 areas where they excelled this week (high averages, consistent habits, etc.)
3. Areas for Growth: Gently identify 2-3 areas that could use improvement based on recommended minimums
4. Nutrition Analysis: Special attention to Tryptophan, Greens, and Healthy Fats presence throughout the week
5. Holistic Insights: Look for connections between sleep, mood, movement, and other factors
6. Next Week Goals: Provide 2-3 specific, achievable goals for the coming week

Weekly Summary:
- Days logged: %d/7
- Average sunlight: %.1f minutes/day
- Average water: %.1f liters/day
- Average movement: %.1f minutes/day
- Average sleep: %.1f hours/day
- Average mental reset: %.1f minutes/day
- Social connection: %d/%d days
- Nutrition variety: %d unique items
- Key nutrition present: Tryptophan: %s, Greens: %s, Healthy Fats: %s

Daily Breakdown:
%s

Recommended minimums for reference: Sunlight 10min, Water 2L, Movement 20min, Sleep 7h, Mental Reset 5min.

Respond in a warm, encouraging, and insightful tone. Make it feel like a thoughtful coach who really understands their week.`,
		stats.DaysLogged, engine.WindowRange(window),
		stats.DaysLogged, stats.AvgSunlight, stats.AvgWater, stats.AvgMovement,
		stats.AvgSleep, stats.AvgMentalReset, stats.SocialDays, stats.DaysLogged,
		stats.NutritionVariety, yesNo(stats.HasTryptophan), yesNo(stats.HasGreens),
		yesNo(stats.HasHealthyFats), strings.Join(breakdown, "\n"))
}
