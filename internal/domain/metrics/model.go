package metrics

// Ideal daily values used by the wellness score sub-scores.
const (
	IdealDailySteps          = 10000
	IdealDailySleepMinutes   = 480
	IdealDailyWorkoutMinutes = 30
	IdealDailyScreenMinutes  = 240
)

// Streak qualification thresholds. These are looser than the score ideals
// on purpose: a streak rewards showing up, not hitting the target.
const (
	StreakWorkoutMinutes = 15
	StreakSleepMinutes   = 420
	StreakSteps          = 8000
)

// TopRankCount is how many apps/categories the chart rankings carry.
const TopRankCount = 5

// HealthAverages holds per-day averages over the reporting window.
type HealthAverages struct {
	Steps            float64 `json:"steps"`
	SleepMinutes     float64 `json:"sleep_minutes"`
	ActiveEnergyKcal float64 `json:"active_energy_kcal"`
	WorkoutMinutes   float64 `json:"workout_minutes"`
}

// AppUsage is one app's summed minutes over the window.
type AppUsage struct {
	App     string `json:"app"`
	Minutes int    `json:"minutes"`
}

// CategoryUsage is one category's summed minutes over the window.
type CategoryUsage struct {
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
}

// ScreenTimeSummary aggregates the screen-time dataset for the dashboard.
type ScreenTimeSummary struct {
	TotalMinutes  int             `json:"total_minutes"`
	DailyAverage  float64         `json:"daily_average"`
	TopApps       []AppUsage      `json:"top_apps"`
	TopCategories []CategoryUsage `json:"top_categories"`
}

// SubScores are the four weighted components of the wellness score, each
// clamped to [0, 100].
type SubScores struct {
	Steps      float64 `json:"steps"`
	Sleep      float64 `json:"sleep"`
	Workout    float64 `json:"workout"`
	ScreenTime float64 `json:"screen_time"`
}

// Wellness is the composite 0-100 score plus its components.
type Wellness struct {
	Score     int       `json:"score"`
	SubScores SubScores `json:"sub_scores"`
}

// WeeklyComparison contrasts the trailing 7-day wellness score with the
// full-window score.
type WeeklyComparison struct {
	WeeklyScore  int `json:"weekly_score"`
	OverallScore int `json:"overall_score"`
	WeeklyChange int `json:"weekly_change"`
}

// Streak tracks the run of qualifying days ending at the most recent record
// (Current) and the longest run anywhere in the window (Best).
type Streak struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// Streaks groups the per-habit streak counters.
type Streaks struct {
	Workout Streak `json:"workout"`
	Sleep   Streak `json:"sleep"`
	Steps   Streak `json:"steps"`
}

// Metrics is the full derived dashboard payload. It is a pure function of
// the two input datasets and is recomputed on demand, never persisted.
type Metrics struct {
	Days       int               `json:"days"`
	Averages   HealthAverages    `json:"averages"`
	ScreenTime ScreenTimeSummary `json:"screen_time"`
	Wellness   Wellness          `json:"wellness"`
	Weekly     WeeklyComparison  `json:"weekly"`
	Streaks    Streaks           `json:"streaks"`
}
