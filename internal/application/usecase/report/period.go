// Package report contains reporting and analytics use cases.
package report

import (
	"fmt"
	"time"
)

// Granularity selects the bucket size for trend series.
type Granularity string

const (
	GranularityWeekly    Granularity = "weekly"
	GranularityMonthly   Granularity = "monthly"
	GranularityQuarterly Granularity = "quarterly"
)

// monthAbbreviations maps months to their three letter labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// PeriodInfo holds information about a single period bucket.
type PeriodInfo struct {
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// GeneratePeriodLabel generates a human-readable label for a period.
// Formats:
// - Weekly: "W{week} {year}" (e.g., "W12 2025")
// - Monthly: "{month_abbr} {year}" (e.g., "Mar 2025")
// - Quarterly: "Q{quarter} {year}" (e.g., "Q1 2025")
func GeneratePeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		_, week := date.ISOWeek()
		return fmt.Sprintf("W%d %d", week, date.Year())
	case GranularityMonthly:
		return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
	case GranularityQuarterly:
		quarter := (int(date.Month())-1)/3 + 1
		return fmt.Sprintf("Q%d %d", quarter, date.Year())
	default:
		return date.Format("2006-01-02")
	}
}

// GeneratePeriodSeries generates all periods between startDate and endDate
// for the given granularity. Charts rely on a continuous series, so empty
// periods are included.
func GeneratePeriodSeries(startDate, endDate time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo
	loc := startDate.Location()

	switch granularity {
	case GranularityWeekly:
		current := weekStart(startDate)
		for !current.After(endDate) {
			weekEnd := current.AddDate(0, 0, 6)
			if weekEnd.After(endDate) {
				weekEnd = endDate
			}
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   weekEnd,
				PeriodLabel: GeneratePeriodLabel(current, GranularityWeekly),
			})
			current = current.AddDate(0, 0, 7)
		}

	case GranularityMonthly:
		current := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, loc)
		for !current.After(endDate) {
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   current.AddDate(0, 1, -1),
				PeriodLabel: GeneratePeriodLabel(current, GranularityMonthly),
			})
			current = current.AddDate(0, 1, 0)
		}

	case GranularityQuarterly:
		quarter := (int(startDate.Month()) - 1) / 3
		current := time.Date(startDate.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, loc)
		for !current.After(endDate) {
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   current.AddDate(0, 3, -1),
				PeriodLabel: GeneratePeriodLabel(current, GranularityQuarterly),
			})
			current = current.AddDate(0, 3, 0)
		}
	}

	return periods
}

// PeriodKeyForDate returns a stable key for the period containing the date,
// used to bucket transactions into the generated series.
func PeriodKeyForDate(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		return weekStart(date).Format("2006-01-02")
	case GranularityMonthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).Format("2006-01-02")
	case GranularityQuarterly:
		quarter := (int(date.Month()) - 1) / 3
		return time.Date(date.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, date.Location()).Format("2006-01-02")
	default:
		return date.Format("2006-01-02")
	}
}

// weekStart returns the Monday of the week containing the given date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}
