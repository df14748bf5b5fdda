package insights

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/sanikac1014/Altu-health-app/internal/domain/health"
	"github.com/sanikac1014/Altu-health-app/internal/domain/metrics"
)

// trendWindowDays is the size of both trend comparison windows.
const trendWindowDays = 30

// stableBandPercent is the half-width of the "stable" trend band.
const stableBandPercent = 5

// contextRankCount is how many apps the extreme-usage context lists carry.
const contextRankCount = 5

// appAliases maps colloquial names to the app names the datasets use.
// Aliases are matched as whole words so short ones do not fire on
// unrelated text.
var appAliases = map[string]string{
	"x":     "twitter",
	"x app": "twitter",
	"insta": "instagram",
	"ig":    "instagram",
	"yt":    "youtube",
	"fb":    "facebook",
}

// question is the pre-lowered form a rule predicate inspects.
type question struct {
	text  string
	words map[string]struct{}
}

func (q question) has(keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q.text, kw) {
			return true
		}
	}
	return false
}

func (q question) hasWord(w string) bool {
	_, ok := q.words[w]
	return ok
}

// rule is one independent predicate plus the computation it triggers.
// Rules never see each other's output; several can fire on one question.
// apply reports whether it actually contributed fields, so MatchedRules
// only lists rules that produced something.
type rule struct {
	name    string
	applies func(q question) bool
	apply   func(q question, out *Insights, healthRecords []health.HealthRecord, screenRecords []health.ScreenTimeRecord) bool
}

var rules = []rule{
	{
		name: "app_usage_extremes",
		applies: func(q question) bool {
			return q.has("most", "least") && q.has("app", "use")
		},
		apply: applyUsageExtremes,
	},
	{
		name: "weekday_weekend_split",
		applies: func(q question) bool {
			return q.has("weekday", "weekend")
		},
		apply: applyWeekSplit,
	},
	{
		name: "metric_trend",
		applies: func(q question) bool {
			return q.has("trend", "change", "increase", "decrease") &&
				q.has("steps", "step", "sleep", "workout")
		},
		apply: applyTrend,
	},
	{
		name: "exercise_sleep_effect",
		applies: func(q question) bool {
			return q.has("exercise", "workout") && q.has("sleep")
		},
		apply: applyExerciseSleep,
	},
}

// Extract runs every rule against the question and returns the merged
// sparse result. It never fails: an unmatched question yields an empty
// Insights and malformed data simply produces fewer fields.
func Extract(questionText string, healthRecords []health.HealthRecord, screenRecords []health.ScreenTimeRecord) Insights {
	q := newQuestion(questionText)

	var out Insights
	for _, r := range rules {
		if !r.applies(q) {
			continue
		}
		if r.apply(q, &out, healthRecords, screenRecords) {
			out.MatchedRules = append(out.MatchedRules, r.name)
		}
	}
	return out
}

func newQuestion(text string) question {
	lowered := strings.ToLower(text)
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = struct{}{}
	}
	return question{text: lowered, words: words}
}

// resolveApp finds which observed app the question refers to. Direct
// substring matches against observed names win; the alias table is the
// fallback. Returns "" when nothing matches.
func resolveApp(q question, screenRecords []health.ScreenTimeRecord) string {
	seen := make(map[string]struct{})
	var observed []string
	for _, r := range screenRecords {
		if _, ok := seen[r.App]; ok {
			continue
		}
		seen[r.App] = struct{}{}
		observed = append(observed, r.App)
	}

	for _, app := range observed {
		if strings.Contains(q.text, strings.ToLower(app)) {
			return app
		}
	}

	aliases := make([]string, 0, len(appAliases))
	for alias := range appAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	for _, alias := range aliases {
		target := appAliases[alias]
		matched := false
		if strings.Contains(alias, " ") {
			matched = strings.Contains(q.text, alias)
		} else {
			matched = q.hasWord(alias)
		}
		if !matched {
			continue
		}
		for _, app := range observed {
			if strings.EqualFold(app, target) {
				return app
			}
		}
	}
	return ""
}

func applyUsageExtremes(_ question, out *Insights, _ []health.HealthRecord, screenRecords []health.ScreenTimeRecord) bool {
	ranked := metrics.RankApps(screenRecords)
	if len(ranked) == 0 {
		return false
	}

	most := ranked[0]
	out.MostUsedApp = &most

	// The ranking is stable, so among tied minimums the first-inserted app
	// appears first. Pick that one as the least used.
	minMinutes := ranked[len(ranked)-1].Minutes
	for _, r := range ranked {
		if r.Minutes == minMinutes {
			least := r
			out.LeastUsedApp = &least
			break
		}
	}

	top := contextRankCount
	if len(ranked) < top {
		top = len(ranked)
	}
	out.TopApps = append([]metrics.AppUsage(nil), ranked[:top]...)

	bottom := contextRankCount
	if len(ranked) < bottom {
		bottom = len(ranked)
	}
	out.BottomApps = append([]metrics.AppUsage(nil), ranked[len(ranked)-bottom:]...)
	return true
}

func applyWeekSplit(q question, out *Insights, _ []health.HealthRecord, screenRecords []health.ScreenTimeRecord) bool {
	app := resolveApp(q, screenRecords)
	if app == "" {
		return false
	}
	out.ResolvedAppName = app

	var weekday, weekend []health.ScreenTimeRecord
	for _, r := range screenRecords {
		if r.App != app {
			continue
		}
		if r.IsWeekend() {
			weekend = append(weekend, r)
		} else {
			weekday = append(weekday, r)
		}
	}

	out.AppWeekSplit = &WeekdayWeekendSplit{
		App:     app,
		Weekday: bucketize(weekday),
		Weekend: bucketize(weekend),
	}
	return true
}

func bucketize(records []health.ScreenTimeRecord) UsageBucket {
	perDay := make(map[string]int)
	total := 0
	for _, r := range records {
		perDay[r.Date] += r.Minutes
		total += r.Minutes
	}

	daily := make([]DailyUsage, 0, len(perDay))
	for date, minutes := range perDay {
		daily = append(daily, DailyUsage{Date: date, Minutes: minutes})
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date < daily[j].Date
	})

	bucket := UsageBucket{
		Days:         len(daily),
		TotalMinutes: total,
		Daily:        daily,
	}
	if bucket.Days > 0 {
		bucket.AverageMinutes = float64(total) / float64(bucket.Days)
	}
	return bucket
}

func applyTrend(q question, out *Insights, healthRecords []health.HealthRecord, _ []health.ScreenTimeRecord) bool {
	if len(healthRecords) == 0 {
		return false
	}

	metric, value := trendMetric(q)
	if metric == "" {
		return false
	}

	days := make([]health.HealthRecord, len(healthRecords))
	copy(days, healthRecords)
	health.SortChronological(days)

	last := days[len(days)-1].Day()
	currentCutoff := last.AddDate(0, 0, -(trendWindowDays - 1)).Format(health.DateLayout)
	previousCutoff := last.AddDate(0, 0, -(2*trendWindowDays - 1)).Format(health.DateLayout)

	var currentSum, currentDays, previousSum, previousDays int
	for _, d := range days {
		switch {
		case d.Date >= currentCutoff:
			currentSum += value(d)
			currentDays++
		case d.Date >= previousCutoff:
			previousSum += value(d)
			previousDays++
		}
	}

	trend := &MetricTrend{Metric: metric}
	if currentDays > 0 {
		trend.CurrentAvg = float64(currentSum) / float64(currentDays)
	}
	if previousDays > 0 {
		trend.PreviousAvg = float64(previousSum) / float64(previousDays)
	}
	trend.Change = trend.CurrentAvg - trend.PreviousAvg

	if trend.PreviousAvg != 0 {
		trend.PercentChange = int(math.Round(trend.Change / trend.PreviousAvg * 100))
	}

	switch {
	case trend.PercentChange >= stableBandPercent:
		trend.Direction = TrendIncreasing
	case trend.PercentChange <= -stableBandPercent:
		trend.Direction = TrendDecreasing
	default:
		trend.Direction = TrendStable
	}

	out.Trend = trend
	return true
}

func trendMetric(q question) (string, func(health.HealthRecord) int) {
	switch {
	case q.has("steps", "step"):
		return "steps", func(d health.HealthRecord) int { return d.Steps }
	case q.has("sleep"):
		return "sleep_minutes", func(d health.HealthRecord) int { return d.SleepMinutes }
	case q.has("workout"):
		return "workout_minutes", func(d health.HealthRecord) int { return d.WorkoutMinutes }
	}
	return "", nil
}

func applyExerciseSleep(_ question, out *Insights, healthRecords []health.HealthRecord, _ []health.ScreenTimeRecord) bool {
	if len(healthRecords) == 0 {
		return false
	}

	days := make([]health.HealthRecord, len(healthRecords))
	copy(days, healthRecords)
	health.SortChronological(days)

	last := days[len(days)-1].Day()
	cutoff := last.AddDate(0, 0, -(trendWindowDays - 1)).Format(health.DateLayout)

	effect := &ExerciseSleepEffect{}
	var workoutSleep, restSleep int
	for _, d := range days {
		if d.Date < cutoff {
			continue
		}
		if d.WorkoutMinutes > 0 {
			effect.WorkoutDays++
			workoutSleep += d.SleepMinutes
		} else {
			effect.RestDays++
			restSleep += d.SleepMinutes
		}
	}

	if effect.WorkoutDays > 0 {
		effect.WorkoutDaysAvgSleep = float64(workoutSleep) / float64(effect.WorkoutDays)
	}
	if effect.RestDays > 0 {
		effect.RestDaysAvgSleep = float64(restSleep) / float64(effect.RestDays)
	}
	effect.SleepDifference = effect.WorkoutDaysAvgSleep - effect.RestDaysAvgSleep

	out.ExerciseSleep = effect
	return true
}
