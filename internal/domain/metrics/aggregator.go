package metrics

import (
	"math"
	"sort"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
)

// Compute derives the full dashboard metrics from the two datasets. It is
// deterministic, never errors, and fails soft: when either input is empty
// it returns the zero Metrics so the dashboard renders "no data" instead of
// crashing. Input slices are not mutated.
func Compute(healthRecords []health.HealthRecord, screenRecords []health.ScreenTimeRecord) Metrics {
	if len(healthRecords) == 0 || len(screenRecords) == 0 {
		return Metrics{}
	}

	days := make([]health.HealthRecord, len(healthRecords))
	copy(days, healthRecords)
	health.SortChronological(days)

	averages := computeAverages(days)
	screenSummary := summarizeScreenTime(screenRecords)

	overallScore, subScores := wellnessScore(
		averages.Steps,
		averages.SleepMinutes,
		averages.WorkoutMinutes,
		screenSummary.DailyAverage,
	)

	return Metrics{
		Days:       len(days),
		Averages:   averages,
		ScreenTime: screenSummary,
		Wellness: Wellness{
			Score:     overallScore,
			SubScores: subScores,
		},
		Weekly:  weeklyComparison(days, screenRecords, overallScore),
		Streaks: computeStreaks(days),
	}
}

func computeAverages(days []health.HealthRecord) HealthAverages {
	var steps, sleep, energy, workout int
	for _, d := range days {
		steps += d.Steps
		sleep += d.SleepMinutes
		energy += d.ActiveEnergyKcal
		workout += d.WorkoutMinutes
	}
	n := float64(len(days))
	return HealthAverages{
		Steps:            float64(steps) / n,
		SleepMinutes:     float64(sleep) / n,
		ActiveEnergyKcal: float64(energy) / n,
		WorkoutMinutes:   float64(workout) / n,
	}
}

func summarizeScreenTime(records []health.ScreenTimeRecord) ScreenTimeSummary {
	ranked := RankApps(records)

	total := 0
	for _, r := range ranked {
		total += r.Minutes
	}

	summary := ScreenTimeSummary{
		TotalMinutes:  total,
		TopApps:       topN(ranked, TopRankCount),
		TopCategories: topNCategories(RankCategories(records), TopRankCount),
	}
	if observed := distinctDays(records); observed > 0 {
		summary.DailyAverage = float64(total) / float64(observed)
	}
	return summary
}

// RankApps sums minutes per app and ranks the result by minutes descending.
// The sort is stable and ties keep first-seen (insertion) order, so the
// ranking is deterministic for identical inputs. The ranking is exhaustive:
// every app in the input appears exactly once.
func RankApps(records []health.ScreenTimeRecord) []AppUsage {
	totals := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		if _, seen := totals[r.App]; !seen {
			order = append(order, r.App)
		}
		totals[r.App] += r.Minutes
	}

	ranked := make([]AppUsage, 0, len(order))
	for _, app := range order {
		ranked = append(ranked, AppUsage{App: app, Minutes: totals[app]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Minutes > ranked[j].Minutes
	})
	return ranked
}

// RankCategories is RankApps keyed by category.
func RankCategories(records []health.ScreenTimeRecord) []CategoryUsage {
	totals := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		if _, seen := totals[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] += r.Minutes
	}

	ranked := make([]CategoryUsage, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, CategoryUsage{Category: category, Minutes: totals[category]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Minutes > ranked[j].Minutes
	})
	return ranked
}

func topN(ranked []AppUsage, n int) []AppUsage {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]AppUsage, n)
	copy(out, ranked[:n])
	return out
}

func topNCategories(ranked []CategoryUsage, n int) []CategoryUsage {
	if len(ranked) < n {
		n = len(ranked)
	}
	out := make([]CategoryUsage, n)
	copy(out, ranked[:n])
	return out
}

func distinctDays(records []health.ScreenTimeRecord) int {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}

// wellnessScore applies the weighted composite formula. Screen time is
// inverted (less is better); zero recorded usage scores a full 100.
func wellnessScore(avgSteps, avgSleep, avgWorkout, avgScreen float64) (int, SubScores) {
	sub := SubScores{
		Steps:      clampScore(avgSteps / IdealDailySteps * 100),
		Sleep:      clampScore(avgSleep / IdealDailySleepMinutes * 100),
		Workout:    clampScore(avgWorkout / IdealDailyWorkoutMinutes * 100),
		ScreenTime: screenTimeScore(avgScreen),
	}
	score := int(math.Round(
		sub.Steps*0.30 + sub.Sleep*0.30 + sub.Workout*0.25 + sub.ScreenTime*0.15,
	))
	return score, sub
}

func screenTimeScore(avgMinutes float64) float64 {
	if avgMinutes <= 0 {
		return 100
	}
	return clampScore(IdealDailyScreenMinutes / avgMinutes * 100)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// weeklyComparison reapplies the wellness formula to the trailing 7-day
// window and reports the delta against the full-window score.
func weeklyComparison(days []health.HealthRecord, screenRecords []health.ScreenTimeRecord, overallScore int) WeeklyComparison {
	last := days[len(days)-1].Day()
	cutoff := last.AddDate(0, 0, -6).Format(health.DateLayout)

	var week []health.HealthRecord
	for _, d := range days {
		if d.Date >= cutoff {
			week = append(week, d)
		}
	}
	if len(week) == 0 {
		return WeeklyComparison{OverallScore: overallScore, WeeklyChange: -overallScore}
	}

	var weekScreen []health.ScreenTimeRecord
	for _, r := range screenRecords {
		if r.Date >= cutoff {
			weekScreen = append(weekScreen, r)
		}
	}

	averages := computeAverages(week)
	screenAvg := 0.0
	if observed := distinctDays(weekScreen); observed > 0 {
		total := 0
		for _, r := range weekScreen {
			total += r.Minutes
		}
		screenAvg = float64(total) / float64(observed)
	}

	weeklyScore, _ := wellnessScore(averages.Steps, averages.SleepMinutes, averages.WorkoutMinutes, screenAvg)
	return WeeklyComparison{
		WeeklyScore:  weeklyScore,
		OverallScore: overallScore,
		WeeklyChange: weeklyScore - overallScore,
	}
}

func computeStreaks(days []health.HealthRecord) Streaks {
	return Streaks{
		Workout: computeStreak(days, func(d health.HealthRecord) bool {
			return d.WorkoutMinutes >= StreakWorkoutMinutes
		}),
		Sleep: computeStreak(days, func(d health.HealthRecord) bool {
			return d.SleepMinutes >= StreakSleepMinutes
		}),
		Steps: computeStreak(days, func(d health.HealthRecord) bool {
			return d.Steps >= StreakSteps
		}),
	}
}

// computeStreak expects days in chronological order. Best scans forward,
// resetting on any failing day; Current counts backward from the most
// recent day and stops at the first failing one.
func computeStreak(days []health.HealthRecord, qualifies func(health.HealthRecord) bool) Streak {
	var streak Streak
	run := 0
	for _, d := range days {
		if !qualifies(d) {
			run = 0
			continue
		}
		run++
		if run > streak.Best {
			streak.Best = run
		}
	}
	for i := len(days) - 1; i >= 0; i-- {
		if !qualifies(days[i]) {
			break
		}
		streak.Current++
	}
	return streak
}
