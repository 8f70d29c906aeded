package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
)

// topCustomerLimit bounds the spend leaderboard.
const topCustomerLimit = 10

// customerTotals is the per-customer accumulator: all-time spend, net point
// balance and visit count.
type customerTotals struct {
	userID uuid.UUID
	spent  float64
	points int
	visits int
}

// aggregateCustomerTotals groups transactions by customer in a single pass.
// The result preserves first-appearance order so that downstream sorting is
// deterministic under spend ties.
func aggregateCustomerTotals(transactions []models.Transaction) []customerTotals {
	index := make(map[uuid.UUID]int, len(transactions))
	totals := make([]customerTotals, 0, len(transactions))

	for _, t := range transactions {
		i, ok := index[t.UserID]
		if !ok {
			i = len(totals)
			index[t.UserID] = i
			totals = append(totals, customerTotals{userID: t.UserID})
		}
		totals[i].spent += t.Amount
		// Net balance: redemptions draw from the accumulated balance, so
		// this can go negative. Display figure only, never reconciled.
		totals[i].points += t.PointsEarned - t.PointsRedeemed
		totals[i].visits++
	}

	return totals
}

// RankTopCustomers returns up to ten customers ordered by all-time spend,
// highest first. Ties keep aggregation order (stable sort). Names and
// emails are resolved against the customer slice; customers that have
// transactions but no record get the "Unknown" sentinel instead of failing.
func RankTopCustomers(totals []customerTotals, customers []models.User) []models.TopCustomer {
	byID := make(map[uuid.UUID]models.User, len(customers))
	for _, u := range customers {
		byID[u.ID] = u
	}

	ranked := make([]customerTotals, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].spent > ranked[j].spent
	})

	if len(ranked) > topCustomerLimit {
		ranked = ranked[:topCustomerLimit]
	}

	top := make([]models.TopCustomer, 0, len(ranked))
	for _, ct := range ranked {
		name, email := "Unknown", ""
		if u, ok := byID[ct.userID]; ok {
			name, email = u.Name, u.Email
		}
		top = append(top, models.TopCustomer{
			ID:         ct.userID.String(),
			Name:       name,
			Email:      email,
			TotalSpent: ct.spent,
			Points:     ct.points,
			VisitCount: ct.visits,
		})
	}

	return top
}
