package dto

// HealthAveragesResponse carries per-day averages over the reporting window.
type HealthAveragesResponse struct {
	Steps            float64 `json:"steps"`
	SleepMinutes     float64 `json:"sleep_minutes"`
	ActiveEnergyKcal float64 `json:"active_energy_kcal"`
	WorkoutMinutes   float64 `json:"workout_minutes"`
}

// AppUsageResponse is one ranked app entry.
type AppUsageResponse struct {
	App     string `json:"app"`
	Minutes int    `json:"minutes"`
}

// CategoryUsageResponse is one ranked category entry.
type CategoryUsageResponse struct {
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
}

// ScreenTimeResponse summarizes the screen-time dataset.
type ScreenTimeResponse struct {
	TotalMinutes  int                     `json:"total_minutes"`
	DailyAverage  float64                 `json:"daily_average"`
	TopApps       []AppUsageResponse      `json:"top_apps"`
	TopCategories []CategoryUsageResponse `json:"top_categories"`
}

// SubScoresResponse carries the four weighted wellness components.
type SubScoresResponse struct {
	Steps      float64 `json:"steps"`
	Sleep      float64 `json:"sleep"`
	Workout    float64 `json:"workout"`
	ScreenTime float64 `json:"screen_time"`
}

// WellnessResponse is the composite score plus its components.
type WellnessResponse struct {
	Score     int               `json:"score"`
	SubScores SubScoresResponse `json:"sub_scores"`
}

// WeeklyComparisonResponse contrasts the trailing week with the full window.
type WeeklyComparisonResponse struct {
	WeeklyScore  int `json:"weekly_score"`
	OverallScore int `json:"overall_score"`
	WeeklyChange int `json:"weekly_change"`
}

// StreakResponse is one habit's current and best streak.
type StreakResponse struct {
	Current int `json:"current"`
	Best    int `json:"best"`
}

// StreaksResponse groups the per-habit streaks.
type StreaksResponse struct {
	Workout StreakResponse `json:"workout"`
	Sleep   StreakResponse `json:"sleep"`
	Steps   StreakResponse `json:"steps"`
}

// DashboardMetricsResponse is the full dashboard payload.
type DashboardMetricsResponse struct {
	Days       int                      `json:"days"`
	Averages   HealthAveragesResponse   `json:"averages"`
	ScreenTime ScreenTimeResponse       `json:"screen_time"`
	Wellness   WellnessResponse         `json:"wellness"`
	Weekly     WeeklyComparisonResponse `json:"weekly"`
	Streaks    StreaksResponse          `json:"streaks"`
}
