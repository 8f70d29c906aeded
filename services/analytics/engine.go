// Package analytics computes the dashboard snapshot for one tenant. The
// engine is a pure function of the tenant's customers, transactions and
// rewards plus a reference instant: no I/O, no clock reads, no state shared
// across requests. Every invocation recomputes from scratch.
package analytics

import (
	"time"

	"github.com/nyashaushe/loyaltAI/models"
)

// ComputeSnapshot aggregates the given collections into an
// AnalyticsSnapshot. The collections are treated as immutable tenant-scoped
// slices fetched by the caller; well-formed input cannot fail.
func ComputeSnapshot(customers []models.User, transactions []models.Transaction, rewards []models.Reward, now time.Time) models.AnalyticsSnapshot {
	totalCustomers := len(customers)
	totalTransactions := len(transactions)

	var totalRevenue float64
	totalPointsIssued := 0
	for _, t := range transactions {
		totalRevenue += t.Amount
		totalPointsIssued += t.PointsEarned
	}

	avgTransactionValue := 0.0
	if totalTransactions > 0 {
		avgTransactionValue = totalRevenue / float64(totalTransactions)
	}

	// Month-over-month revenue growth
	currentTxns, previousTxns := MonthBuckets(transactions, now)
	var currentMonthRevenue, previousMonthRevenue float64
	for _, t := range currentTxns {
		currentMonthRevenue += t.Amount
	}
	for _, t := range previousTxns {
		previousMonthRevenue += t.Amount
	}
	revenueGrowth := Growth(currentMonthRevenue, previousMonthRevenue)

	// Month-over-month new-customer growth, bucketed by signup date
	currentStart := monthStart(now)
	previousStart := currentStart.AddDate(0, -1, 0)
	var currentMonthCustomers, previousMonthCustomers int
	for _, u := range customers {
		switch {
		case !u.CreatedAt.Before(currentStart):
			currentMonthCustomers++
		case !u.CreatedAt.Before(previousStart):
			previousMonthCustomers++
		}
	}
	customerGrowth := Growth(float64(currentMonthCustomers), float64(previousMonthCustomers))

	monthlyRevenue := MonthlyRevenueSeries(transactions, now)
	totals := aggregateCustomerTotals(transactions)
	segments := SegmentCustomers(customers, totals)
	topCustomers := RankTopCustomers(totals, customers)

	rewardUsageTotal := 0
	for _, r := range rewards {
		rewardUsageTotal += r.UsageCount
	}

	highValuePercent := 0
	for _, s := range segments {
		if s.Segment == SegmentHigh {
			highValuePercent = s.Percentage
		}
	}

	insights := generateInsights(ruleInputs{
		monthlyRevenue:    monthlyRevenue,
		totalRevenue:      totalRevenue,
		totalCustomers:    totalCustomers,
		totalPointsIssued: totalPointsIssued,
		rewardUsageTotal:  rewardUsageTotal,
		highValuePercent:  highValuePercent,
		now:               now,
	})

	return models.AnalyticsSnapshot{
		TotalCustomers:      totalCustomers,
		TotalRevenue:        totalRevenue,
		TotalPointsIssued:   totalPointsIssued,
		TotalTransactions:   totalTransactions,
		AvgTransactionValue: avgTransactionValue,
		CustomerGrowth:      customerGrowth,
		RevenueGrowth:       revenueGrowth,
		TopCustomers:        topCustomers,
		MonthlyRevenue:      monthlyRevenue,
		CustomerSegments:    segments,
		Insights:            insights,
	}
}
