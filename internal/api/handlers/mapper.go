package handlers

import (
	"github.com/sanikac1014/Altu-health-app/internal/api/dto"
	"github.com/sanikac1014/Altu-health-app/internal/domain/assistant"
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
)

// MetricsToResponse converts domain metrics to the API representation.
func MetricsToResponse(m metrics.Metrics) dto.DashboardMetricsResponse {
	topApps := make([]dto.AppUsageResponse, 0, len(m.ScreenTime.TopApps))
	for _, a := range m.ScreenTime.TopApps {
		topApps = append(topApps, dto.AppUsageResponse{App: a.App, Minutes: a.Minutes})
	}

	topCategories := make([]dto.CategoryUsageResponse, 0, len(m.ScreenTime.TopCategories))
	for _, c := range m.ScreenTime.TopCategories {
		topCategories = append(topCategories, dto.CategoryUsageResponse{Category: c.Category, Minutes: c.Minutes})
	}

	return dto.DashboardMetricsResponse{
		Days: m.Days,
		Averages: dto.HealthAveragesResponse{
			Steps:            m.Averages.Steps,
			SleepMinutes:     m.Averages.SleepMinutes,
			ActiveEnergyKcal: m.Averages.ActiveEnergyKcal,
			WorkoutMinutes:   m.Averages.WorkoutMinutes,
		},
		ScreenTime: dto.ScreenTimeResponse{
			TotalMinutes:  m.ScreenTime.TotalMinutes,
			DailyAverage:  m.ScreenTime.DailyAverage,
			TopApps:       topApps,
			TopCategories: topCategories,
		},
		Wellness: dto.WellnessResponse{
			Score: m.Wellness.Score,
			SubScores: dto.SubScoresResponse{
				Steps:      m.Wellness.SubScores.Steps,
				Sleep:      m.Wellness.SubScores.Sleep,
				Workout:    m.Wellness.SubScores.Workout,
				ScreenTime: m.Wellness.SubScores.ScreenTime,
			},
		},
		Weekly: dto.WeeklyComparisonResponse{
			WeeklyScore:  m.Weekly.WeeklyScore,
			OverallScore: m.Weekly.OverallScore,
			WeeklyChange: m.Weekly.WeeklyChange,
		},
		Streaks: dto.StreaksResponse{
			Workout: dto.StreakResponse{Current: m.Streaks.Workout.Current, Best: m.Streaks.Workout.Best},
			Sleep:   dto.StreakResponse{Current: m.Streaks.Sleep.Current, Best: m.Streaks.Sleep.Best},
			Steps:   dto.StreakResponse{Current: m.Streaks.Steps.Current, Best: m.Streaks.Steps.Best},
		},
	}
}

// AnswerToResponse converts an assistant answer to the API representation.
func AnswerToResponse(a *assistant.Answer) dto.AskResponse {
	return dto.AskResponse{
		ID:        a.ID.String(),
		Question:  a.Question,
		Chart:     a.Chart,
		Answer:    a.Answer,
		Insights:  a.Insights,
		CreatedAt: a.CreatedAt,
	}
}
