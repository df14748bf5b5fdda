package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
)

func sampleScreenRecords() []health.ScreenTimeRecord {
	return []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "A", Minutes: 100, Category: "Social"},
		{Date: "2026-08-10", App: "B", Minutes: 250, Category: "Entertainment"},
		{Date: "2026-08-11", App: "C", Minutes: 40, Category: "Productivity"},
	}
}

func TestExtractNoMatchingRules(t *testing.T) {
	out := Extract("hello there", nil, sampleScreenRecords())
	assert.True(t, out.Empty())
	assert.Nil(t, out.MostUsedApp)
	assert.Nil(t, out.Trend)
}

func TestExtractMostUsedApp(t *testing.T) {
	out := Extract("Which app do I use the most?", nil, sampleScreenRecords())

	require.NotNil(t, out.MostUsedApp)
	assert.Equal(t, "B", out.MostUsedApp.App)
	assert.Equal(t, 250, out.MostUsedApp.Minutes)

	require.NotNil(t, out.LeastUsedApp)
	assert.Equal(t, "C", out.LeastUsedApp.App)
	assert.Equal(t, 40, out.LeastUsedApp.Minutes)

	assert.Contains(t, out.MatchedRules, "app_usage_extremes")
}

func TestExtractLeastUsedTieBreak(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "First", Minutes: 10},
		{Date: "2026-08-10", App: "Second", Minutes: 10},
		{Date: "2026-08-10", App: "Big", Minutes: 500},
	}

	out := Extract("what is my least used app", nil, records)

	require.NotNil(t, out.LeastUsedApp)
	assert.Equal(t, "First", out.LeastUsedApp.App)
}

func TestExtractContextListsCapped(t *testing.T) {
	var records []health.ScreenTimeRecord
	for i := 0; i < 8; i++ {
		records = append(records, health.ScreenTimeRecord{
			Date:    "2026-08-10",
			App:     fmt.Sprintf("App%d", i),
			Minutes: (i + 1) * 10,
		})
	}

	out := Extract("which app do I use most", nil, records)

	assert.Len(t, out.TopApps, 5)
	assert.Len(t, out.BottomApps, 5)
	assert.Equal(t, "App7", out.TopApps[0].App)
	assert.Equal(t, "App0", out.BottomApps[len(out.BottomApps)-1].App)
}

func TestExtractWeekdayWeekendSplit(t *testing.T) {
	records := []health.ScreenTimeRecord{
		// 2026-08-14 is a Friday, 2026-08-15 a Saturday, 2026-08-16 a Sunday.
		{Date: "2026-08-14", App: "Instagram", Minutes: 30, Category: "Social"},
		{Date: "2026-08-14", App: "Instagram", Minutes: 20, Category: "Social"},
		{Date: "2026-08-15", App: "Instagram", Minutes: 80, Category: "Social"},
		{Date: "2026-08-16", App: "Instagram", Minutes: 60, Category: "Social"},
		{Date: "2026-08-15", App: "Other", Minutes: 999, Category: "Social"},
	}

	out := Extract("Do I use Instagram more on weekends?", nil, records)

	require.NotNil(t, out.AppWeekSplit)
	assert.Equal(t, "Instagram", out.AppWeekSplit.App)
	assert.Equal(t, "Instagram", out.ResolvedAppName)

	assert.Equal(t, 1, out.AppWeekSplit.Weekday.Days)
	assert.Equal(t, 50, out.AppWeekSplit.Weekday.TotalMinutes)
	assert.Equal(t, 50.0, out.AppWeekSplit.Weekday.AverageMinutes)

	assert.Equal(t, 2, out.AppWeekSplit.Weekend.Days)
	assert.Equal(t, 140, out.AppWeekSplit.Weekend.TotalMinutes)
	assert.Equal(t, 70.0, out.AppWeekSplit.Weekend.AverageMinutes)

	require.Len(t, out.AppWeekSplit.Weekend.Daily, 2)
	assert.Equal(t, "2026-08-15", out.AppWeekSplit.Weekend.Daily[0].Date)
	assert.Equal(t, "2026-08-16", out.AppWeekSplit.Weekend.Daily[1].Date)
}

func TestExtractAppAliasFallback(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-15", App: "Twitter", Minutes: 45, Category: "Social"},
		{Date: "2026-08-14", App: "Safari", Minutes: 30, Category: "Productivity"},
	}

	out := Extract("how much do I use x on weekends", nil, records)

	require.NotNil(t, out.AppWeekSplit)
	assert.Equal(t, "Twitter", out.AppWeekSplit.App)
}

func TestExtractAliasRequiresWholeWord(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-15", App: "Twitter", Minutes: 45, Category: "Social"},
	}

	// "extra" contains the letter x but must not resolve to Twitter.
	out := Extract("any extra weekend usage", nil, records)

	assert.Nil(t, out.AppWeekSplit)
}

func TestExtractTrend(t *testing.T) {
	var records []health.HealthRecord
	// 30 prior days at 5000 steps, then 30 trailing days at 6000.
	for i := 0; i < 60; i++ {
		steps := 5000
		if i >= 30 {
			steps = 6000
		}
		records = append(records, health.HealthRecord{
			Date:  dateAfter("2026-06-01", i),
			Steps: steps,
		})
	}

	out := Extract("is my step count increasing?", records, nil)

	require.NotNil(t, out.Trend)
	assert.Equal(t, "steps", out.Trend.Metric)
	assert.Equal(t, 6000.0, out.Trend.CurrentAvg)
	assert.Equal(t, 5000.0, out.Trend.PreviousAvg)
	assert.Equal(t, 1000.0, out.Trend.Change)
	assert.Equal(t, 20, out.Trend.PercentChange)
	assert.Equal(t, TrendIncreasing, out.Trend.Direction)
}

func TestExtractTrendZeroPreviousAverage(t *testing.T) {
	var records []health.HealthRecord
	for i := 0; i < 60; i++ {
		steps := 0
		if i >= 30 {
			steps = 4000
		}
		records = append(records, health.HealthRecord{
			Date:  dateAfter("2026-06-01", i),
			Steps: steps,
		})
	}

	out := Extract("what is the trend in my steps", records, nil)

	require.NotNil(t, out.Trend)
	assert.Equal(t, 0, out.Trend.PercentChange)
	assert.Equal(t, TrendStable, out.Trend.Direction)
}

func TestExtractTrendStableBand(t *testing.T) {
	var records []health.HealthRecord
	// 4% change stays inside the stable band.
	for i := 0; i < 60; i++ {
		sleep := 500
		if i >= 30 {
			sleep = 520
		}
		records = append(records, health.HealthRecord{
			Date:         dateAfter("2026-06-01", i),
			SleepMinutes: sleep,
		})
	}

	out := Extract("has my sleep changed recently", records, nil)

	require.NotNil(t, out.Trend)
	assert.Equal(t, "sleep_minutes", out.Trend.Metric)
	assert.Equal(t, 4, out.Trend.PercentChange)
	assert.Equal(t, TrendStable, out.Trend.Direction)
}

func TestExtractExerciseSleepEffect(t *testing.T) {
	records := []health.HealthRecord{
		{Date: "2026-08-10", WorkoutMinutes: 30, SleepMinutes: 480},
		{Date: "2026-08-11", WorkoutMinutes: 0, SleepMinutes: 400},
		{Date: "2026-08-12", WorkoutMinutes: 45, SleepMinutes: 500},
		{Date: "2026-08-13", WorkoutMinutes: 0, SleepMinutes: 420},
	}

	out := Extract("does exercise affect my sleep?", records, nil)

	require.NotNil(t, out.ExerciseSleep)
	assert.Equal(t, 2, out.ExerciseSleep.WorkoutDays)
	assert.Equal(t, 490.0, out.ExerciseSleep.WorkoutDaysAvgSleep)
	assert.Equal(t, 2, out.ExerciseSleep.RestDays)
	assert.Equal(t, 410.0, out.ExerciseSleep.RestDaysAvgSleep)
	assert.Equal(t, 80.0, out.ExerciseSleep.SleepDifference)
}

func TestExtractRulesCoFire(t *testing.T) {
	healthRecords := []health.HealthRecord{
		{Date: "2026-08-10", WorkoutMinutes: 30, SleepMinutes: 480},
		{Date: "2026-08-11", WorkoutMinutes: 0, SleepMinutes: 420},
	}

	out := Extract(
		"which app do I use the most, and does exercise affect my sleep?",
		healthRecords,
		sampleScreenRecords(),
	)

	assert.NotNil(t, out.MostUsedApp)
	assert.NotNil(t, out.ExerciseSleep)
	assert.Len(t, out.MatchedRules, 2)
}

func dateAfter(start string, days int) string {
	t, _ := time.Parse(health.DateLayout, start)
	return t.AddDate(0, 0, days).Format(health.DateLayout)
}
