package health

import (
	"sort"
	"time"
)

// DateLayout is the calendar-day format used by both datasets. Dates are
// plain calendar days; no timezone normalization is applied anywhere.
const DateLayout = "2006-01-02"

// HealthRecord is one day of health data. Records are immutable once
// loaded and the full reporting window is held as one chronological slice.
type HealthRecord struct {
	Date             string `json:"date"`
	Steps            int    `json:"steps"`
	SleepMinutes     int    `json:"sleep_minutes"`
	ActiveEnergyKcal int    `json:"active_energy_kcal"`
	WorkoutMinutes   int    `json:"workout_minutes"`
}

// ScreenTimeRecord is one app's usage on one day. Multiple records may
// share a date/app pair; consumers sum them.
type ScreenTimeRecord struct {
	Date     string `json:"date"`
	App      string `json:"app"`
	Minutes  int    `json:"minutes"`
	Category string `json:"category"`
}

// Day parses the record date. A zero time is returned for malformed dates.
func (r HealthRecord) Day() time.Time {
	t, _ := time.Parse(DateLayout, r.Date)
	return t
}

// Day parses the record date. A zero time is returned for malformed dates.
func (r ScreenTimeRecord) Day() time.Time {
	t, _ := time.Parse(DateLayout, r.Date)
	return t
}

// IsWeekend reports whether the record falls on a Saturday or Sunday.
func (r ScreenTimeRecord) IsWeekend() bool {
	wd := r.Day().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// SortChronological orders health records by date, oldest first. ISO dates
// sort correctly as strings, so no parsing is needed. The sort is stable so
// same-day records keep their original order.
func SortChronological(records []HealthRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}

// SortScreenTimeChronological orders screen-time records by date, oldest
// first, preserving insertion order within a day.
func SortScreenTimeChronological(records []ScreenTimeRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}
