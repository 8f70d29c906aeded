package analytics

import (
	"time"

	"github.com/nyashaushe/loyaltAI/models"
)

// monthsInSeries is the length of the trailing revenue series shown on the
// dashboard chart.
const monthsInSeries = 6

// monthStart returns midnight on the first day of t's month, in t's location.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthBuckets partitions transactions into the current calendar month
// (timestamp >= first of now's month) and the previous calendar month
// (half-open on the upper side). Everything older falls through.
func MonthBuckets(transactions []models.Transaction, now time.Time) (current, previous []models.Transaction) {
	currentStart := monthStart(now)
	previousStart := currentStart.AddDate(0, -1, 0)

	for _, t := range transactions {
		switch {
		case !t.Timestamp.Before(currentStart):
			current = append(current, t)
		case !t.Timestamp.Before(previousStart):
			previous = append(previous, t)
		}
	}
	return current, previous
}

// MonthlyRevenueSeries sums transaction amounts into the trailing six
// calendar months, oldest first, ending with the current month. Month
// arithmetic starts from the first of the month, so year boundaries roll
// over correctly (January minus one month is December of the prior year).
func MonthlyRevenueSeries(transactions []models.Transaction, now time.Time) []models.MonthlyRevenue {
	series := make([]models.MonthlyRevenue, 0, monthsInSeries)

	for i := monthsInSeries - 1; i >= 0; i-- {
		start := monthStart(now).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		var revenue float64
		for _, t := range transactions {
			if !t.Timestamp.Before(start) && t.Timestamp.Before(end) {
				revenue += t.Amount
			}
		}

		series = append(series, models.MonthlyRevenue{
			Month:   start.Format("Jan 2006"),
			Revenue: revenue,
		})
	}

	return series
}
