package analytics

import (
	"math"

	"github.com/nyashaushe/loyaltAI/models"
)

// Value tier thresholds in dollars of all-time spend. Hardcoded business
// policy; tests depend on these exact values.
const (
	highValueThreshold   = 1000
	mediumValueThreshold = 100
)

const (
	SegmentHigh   = "High Value"
	SegmentMedium = "Medium Value"
	SegmentLow    = "Low Value"
)

// SegmentCustomers buckets every customer into exactly one value tier by
// all-time spend: High > $1000, Medium > $100, Low otherwise. Customers
// with no transactions count as zero spend, so the three tier counts always
// sum to the customer total. Percentages are integer-rounded shares of the
// customer base, 0 when there are no customers.
func SegmentCustomers(customers []models.User, totals []customerTotals) []models.CustomerSegment {
	spend := make(map[string]float64, len(totals))
	for _, ct := range totals {
		spend[ct.userID.String()] = ct.spent
	}

	var high, medium, low int
	for _, u := range customers {
		switch s := spend[u.ID.String()]; {
		case s > highValueThreshold:
			high++
		case s > mediumValueThreshold:
			medium++
		default:
			low++
		}
	}

	total := len(customers)
	return []models.CustomerSegment{
		{Segment: SegmentHigh, Count: high, Percentage: segmentPercent(high, total)},
		{Segment: SegmentMedium, Count: medium, Percentage: segmentPercent(medium, total)},
		{Segment: SegmentLow, Count: low, Percentage: segmentPercent(low, total)},
	}
}

func segmentPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
