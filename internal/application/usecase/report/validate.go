// Package report contains reporting and analytics use cases.
package report

import (
	"time"

	domainerror "github.com/moneydiary/backend/internal/domain/error"
)

// validateRange rejects ranges whose end precedes their start. Either bound
// may be nil.
func validateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

// validateGranularity rejects unknown granularities.
func validateGranularity(g Granularity) error {
	switch g {
	case GranularityWeekly, GranularityMonthly, GranularityQuarterly:
		return nil
	}
	return domainerror.NewReportError(
		domainerror.ErrCodeInvalidGranularity,
		"granularity must be: weekly, monthly, or quarterly",
		domainerror.ErrInvalidGranularity,
	)
}
