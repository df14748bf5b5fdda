package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
)

func perfectWeek() []health.HealthRecord {
	days := []string{
		"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13",
		"2026-08-14", "2026-08-15", "2026-08-16",
	}
	records := make([]health.HealthRecord, 0, len(days))
	for _, d := range days {
		records = append(records, health.HealthRecord{
			Date:           d,
			Steps:          10000,
			SleepMinutes:   480,
			WorkoutMinutes: 30,
		})
	}
	return records
}

func idealScreenWeek() []health.ScreenTimeRecord {
	days := []string{
		"2026-08-10", "2026-08-11", "2026-08-12", "2026-08-13",
		"2026-08-14", "2026-08-15", "2026-08-16",
	}
	records := make([]health.ScreenTimeRecord, 0, len(days))
	for _, d := range days {
		records = append(records, health.ScreenTimeRecord{
			Date: d, App: "Safari", Minutes: 240, Category: "Productivity",
		})
	}
	return records
}

func TestComputeEmptyInputs(t *testing.T) {
	tests := []struct {
		name   string
		health []health.HealthRecord
		screen []health.ScreenTimeRecord
	}{
		{name: "Both empty"},
		{name: "No health records", screen: idealScreenWeek()},
		{name: "No screen records", health: perfectWeek()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Metrics{}, Compute(tt.health, tt.screen))
		})
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	first := Compute(perfectWeek(), idealScreenWeek())
	second := Compute(perfectWeek(), idealScreenWeek())
	assert.Equal(t, first, second)
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	healthRecords := []health.HealthRecord{
		{Date: "2026-08-12", Steps: 5000},
		{Date: "2026-08-10", Steps: 7000},
	}
	screenRecords := idealScreenWeek()

	Compute(healthRecords, screenRecords)

	assert.Equal(t, "2026-08-12", healthRecords[0].Date)
	assert.Equal(t, "2026-08-10", healthRecords[1].Date)
}

func TestWellnessScorePerfectInputs(t *testing.T) {
	m := Compute(perfectWeek(), idealScreenWeek())

	assert.Equal(t, 100, m.Wellness.Score)
	assert.Equal(t, 100.0, m.Wellness.SubScores.Steps)
	assert.Equal(t, 100.0, m.Wellness.SubScores.Sleep)
	assert.Equal(t, 100.0, m.Wellness.SubScores.Workout)
	assert.Equal(t, 100.0, m.Wellness.SubScores.ScreenTime)
}

func TestSubScoresClampedAtExtremes(t *testing.T) {
	healthRecords := []health.HealthRecord{
		{Date: "2026-08-10", Steps: 50000, SleepMinutes: 2000, WorkoutMinutes: 500},
	}
	screenRecords := []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "Safari", Minutes: 1, Category: "Productivity"},
	}

	m := Compute(healthRecords, screenRecords)

	assert.Equal(t, 100.0, m.Wellness.SubScores.Steps)
	assert.Equal(t, 100.0, m.Wellness.SubScores.Sleep)
	assert.Equal(t, 100.0, m.Wellness.SubScores.Workout)
	assert.Equal(t, 100.0, m.Wellness.SubScores.ScreenTime)
	assert.Equal(t, 100, m.Wellness.Score)
}

func TestScreenTimeScoreZeroUsage(t *testing.T) {
	assert.Equal(t, 100.0, screenTimeScore(0))
	assert.Equal(t, 100.0, screenTimeScore(-5))
	assert.Equal(t, 50.0, screenTimeScore(480))
}

func TestStreakBrokenOnLastDay(t *testing.T) {
	records := []health.HealthRecord{
		{Date: "2026-08-10", WorkoutMinutes: 20},
		{Date: "2026-08-11", WorkoutMinutes: 20},
		{Date: "2026-08-12", WorkoutMinutes: 20},
		{Date: "2026-08-13", WorkoutMinutes: 20},
		{Date: "2026-08-14", WorkoutMinutes: 20},
		{Date: "2026-08-15", WorkoutMinutes: 0},
	}

	streaks := computeStreaks(records)

	assert.Equal(t, 0, streaks.Workout.Current)
	assert.Equal(t, 5, streaks.Workout.Best)
}

func TestStreakCurrentNeverExceedsBest(t *testing.T) {
	tests := []struct {
		name    string
		minutes []int
	}{
		{name: "All qualifying", minutes: []int{20, 20, 20}},
		{name: "Gap in the middle", minutes: []int{20, 0, 20, 20}},
		{name: "None qualifying", minutes: []int{0, 0, 0}},
		{name: "Single day", minutes: []int{15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]health.HealthRecord, 0, len(tt.minutes))
			for i, m := range tt.minutes {
				records = append(records, health.HealthRecord{
					Date:           fmt.Sprintf("2026-08-%02d", 10+i),
					WorkoutMinutes: m,
				})
			}
			streaks := computeStreaks(records)
			assert.LessOrEqual(t, streaks.Workout.Current, streaks.Workout.Best)
			assert.GreaterOrEqual(t, streaks.Workout.Current, 0)
		})
	}
}

func TestStreakThresholdsPerHabit(t *testing.T) {
	records := []health.HealthRecord{
		{Date: "2026-08-10", WorkoutMinutes: 15, SleepMinutes: 420, Steps: 8000},
		{Date: "2026-08-11", WorkoutMinutes: 14, SleepMinutes: 419, Steps: 7999},
	}

	streaks := computeStreaks(records)

	assert.Equal(t, 0, streaks.Workout.Current)
	assert.Equal(t, 1, streaks.Workout.Best)
	assert.Equal(t, 0, streaks.Sleep.Current)
	assert.Equal(t, 1, streaks.Sleep.Best)
	assert.Equal(t, 0, streaks.Steps.Current)
	assert.Equal(t, 1, streaks.Steps.Best)
}

func TestRankAppsExhaustiveAndStable(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "A", Minutes: 40},
		{Date: "2026-08-10", App: "B", Minutes: 100},
		{Date: "2026-08-11", App: "A", Minutes: 60},
		{Date: "2026-08-11", App: "C", Minutes: 100},
	}

	ranked := RankApps(records)

	assert.Len(t, ranked, 3)

	inputTotal := 0
	for _, r := range records {
		inputTotal += r.Minutes
	}
	rankedTotal := 0
	for _, r := range ranked {
		rankedTotal += r.Minutes
	}
	assert.Equal(t, inputTotal, rankedTotal)

	// B and C tie at 100; B was seen first so it ranks ahead.
	assert.Equal(t, "B", ranked[0].App)
	assert.Equal(t, "C", ranked[1].App)
	assert.Equal(t, "A", ranked[2].App)
	assert.Equal(t, 100, ranked[2].Minutes)
}

func TestTopAppsLimitedToFive(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "A", Minutes: 70},
		{Date: "2026-08-10", App: "B", Minutes: 60},
		{Date: "2026-08-10", App: "C", Minutes: 50},
		{Date: "2026-08-10", App: "D", Minutes: 40},
		{Date: "2026-08-10", App: "E", Minutes: 30},
		{Date: "2026-08-10", App: "F", Minutes: 20},
		{Date: "2026-08-10", App: "G", Minutes: 10},
	}
	healthRecords := []health.HealthRecord{{Date: "2026-08-10", Steps: 1}}

	m := Compute(healthRecords, records)

	assert.Len(t, m.ScreenTime.TopApps, 5)
	assert.Equal(t, "A", m.ScreenTime.TopApps[0].App)
	assert.Equal(t, "E", m.ScreenTime.TopApps[4].App)
	assert.Equal(t, 280, m.ScreenTime.TotalMinutes)
}

func TestDailyAverageUsesDistinctDates(t *testing.T) {
	records := []health.ScreenTimeRecord{
		{Date: "2026-08-10", App: "A", Minutes: 100},
		{Date: "2026-08-10", App: "B", Minutes: 100},
		{Date: "2026-08-11", App: "A", Minutes: 100},
	}
	healthRecords := []health.HealthRecord{{Date: "2026-08-11", Steps: 1}}

	m := Compute(healthRecords, records)

	// 300 minutes over 2 distinct days.
	assert.Equal(t, 150.0, m.ScreenTime.DailyAverage)
}

func TestWeeklyComparisonWindow(t *testing.T) {
	var healthRecords []health.HealthRecord
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// 7 weak days followed by 7 strong days.
	for i := 0; i < 14; i++ {
		steps := 2000
		if i >= 7 {
			steps = 10000
		}
		healthRecords = append(healthRecords, health.HealthRecord{
			Date:  base.AddDate(0, 0, i).Format(health.DateLayout),
			Steps: steps,
		})
	}
	screenRecords := []health.ScreenTimeRecord{
		{Date: "2026-08-14", App: "Safari", Minutes: 240},
	}

	m := Compute(healthRecords, screenRecords)

	assert.Greater(t, m.Weekly.WeeklyScore, m.Weekly.OverallScore)
	assert.Equal(t, m.Weekly.WeeklyScore-m.Weekly.OverallScore, m.Weekly.WeeklyChange)
	assert.Equal(t, m.Wellness.Score, m.Weekly.OverallScore)
}
