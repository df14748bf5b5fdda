package insights

import (
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
)

// Insights is the sparse result of matching a question against the rule
// set. Only the fields whose rule fired are populated; everything else is
// omitted from the serialized form so the prompt stays small.
type Insights struct {
	MostUsedApp     *metrics.AppUsage    `json:"most_used_app,omitempty"`
	LeastUsedApp    *metrics.AppUsage    `json:"least_used_app,omitempty"`
	TopApps         []metrics.AppUsage   `json:"top_apps,omitempty"`
	BottomApps      []metrics.AppUsage   `json:"bottom_apps,omitempty"`
	AppWeekSplit    *WeekdayWeekendSplit `json:"app_week_split,omitempty"`
	Trend           *MetricTrend         `json:"trend,omitempty"`
	ExerciseSleep   *ExerciseSleepEffect `json:"exercise_sleep,omitempty"`
	MatchedRules    []string             `json:"matched_rules,omitempty"`
	ResolvedAppName string               `json:"resolved_app_name,omitempty"`
}

// Empty reports whether no rule produced anything.
func (i Insights) Empty() bool {
	return len(i.MatchedRules) == 0
}

// DailyUsage is one day's summed minutes for a single app.
type DailyUsage struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// UsageBucket summarizes one side of the weekday/weekend split.
type UsageBucket struct {
	Days           int          `json:"days"`
	TotalMinutes   int          `json:"total_minutes"`
	AverageMinutes float64      `json:"average_minutes"`
	Daily          []DailyUsage `json:"daily"`
}

// WeekdayWeekendSplit compares one app's usage on weekdays against
// weekends. Weekend means Saturday or Sunday by the record's own date.
type WeekdayWeekendSplit struct {
	App     string      `json:"app"`
	Weekday UsageBucket `json:"weekday"`
	Weekend UsageBucket `json:"weekend"`
}

// Trend direction labels.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// MetricTrend compares the trailing 30-day average of one health metric
// against the 30 days before that.
type MetricTrend struct {
	Metric        string  `json:"metric"`
	CurrentAvg    float64 `json:"current_avg"`
	PreviousAvg   float64 `json:"previous_avg"`
	Change        float64 `json:"change"`
	PercentChange int     `json:"percent_change"`
	Direction     string  `json:"direction"`
}

// ExerciseSleepEffect reports average sleep on workout days versus rest
// days over the trailing 30 days.
type ExerciseSleepEffect struct {
	WorkoutDays         int     `json:"workout_days"`
	WorkoutDaysAvgSleep float64 `json:"workout_days_avg_sleep"`
	RestDays            int     `json:"rest_days"`
	RestDaysAvgSleep    float64 `json:"rest_days_avg_sleep"`
	SleepDifference     float64 `json:"sleep_difference"`
}
