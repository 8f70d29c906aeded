package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCustomerTotals(t *testing.T) {
	userA := uuid.Must(uuid.NewV7())
	userB := uuid.Must(uuid.NewV7())
	ts := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	transactions := []models.Transaction{
		{UserID: userA, Amount: 25.50, PointsEarned: 51, Timestamp: ts},
		{UserID: userB, Amount: 45.25, PointsEarned: 90, Timestamp: ts},
		{UserID: userA, Amount: 32.00, PointsEarned: 64, PointsRedeemed: 100, Timestamp: ts},
	}

	totals := aggregateCustomerTotals(transactions)

	require.Len(t, totals, 2)

	// First appearance order is kept
	assert.Equal(t, userA, totals[0].userID)
	assert.Equal(t, userB, totals[1].userID)

	assert.InDelta(t, 57.50, totals[0].spent, 1e-9)
	assert.Equal(t, 15, totals[0].points) // 51 + 64 - 100
	assert.Equal(t, 2, totals[0].visits)

	assert.InDelta(t, 45.25, totals[1].spent, 1e-9)
	assert.Equal(t, 90, totals[1].points)
	assert.Equal(t, 1, totals[1].visits)
}

func TestAggregateCustomerTotalsNegativeBalance(t *testing.T) {
	user := uuid.Must(uuid.NewV7())
	transactions := []models.Transaction{
		{UserID: user, Amount: 0, PointsEarned: 0, PointsRedeemed: 150, Timestamp: time.Now()},
	}

	totals := aggregateCustomerTotals(transactions)

	require.Len(t, totals, 1)
	assert.Equal(t, -150, totals[0].points)
}

func TestRankTopCustomers(t *testing.T) {
	t.Run("orders by spend descending", func(t *testing.T) {
		a := customer("alice")
		b := customer("bob")
		c := customer("carol")

		top := RankTopCustomers(
			[]customerTotals{
				{userID: a.ID, spent: 100},
				{userID: b.ID, spent: 300},
				{userID: c.ID, spent: 200},
			},
			[]models.User{a, b, c},
		)

		require.Len(t, top, 3)
		assert.Equal(t, "bob", top[0].Name)
		assert.Equal(t, "carol", top[1].Name)
		assert.Equal(t, "alice", top[2].Name)
	})

	t.Run("ties keep aggregation order", func(t *testing.T) {
		a := customer("first")
		b := customer("second")

		top := RankTopCustomers(
			[]customerTotals{
				{userID: a.ID, spent: 50},
				{userID: b.ID, spent: 50},
			},
			[]models.User{a, b},
		)

		require.Len(t, top, 2)
		assert.Equal(t, "first", top[0].Name)
		assert.Equal(t, "second", top[1].Name)
	})

	t.Run("truncates to ten", func(t *testing.T) {
		customers := []models.User{}
		totals := []customerTotals{}
		for i := 0; i < 15; i++ {
			u := customer(fmt.Sprintf("c%02d", i))
			customers = append(customers, u)
			totals = append(totals, customerTotals{userID: u.ID, spent: float64(100 + i)})
		}

		top := RankTopCustomers(totals, customers)

		require.Len(t, top, 10)
		assert.Equal(t, "c14", top[0].Name)
		assert.Equal(t, "c05", top[9].Name)
	})

	t.Run("missing customer record gets the sentinel", func(t *testing.T) {
		orphan := uuid.Must(uuid.NewV7())

		top := RankTopCustomers(
			[]customerTotals{{userID: orphan, spent: 75}},
			nil,
		)

		require.Len(t, top, 1)
		assert.Equal(t, "Unknown", top[0].Name)
		assert.Equal(t, "", top[0].Email)
		assert.Equal(t, orphan.String(), top[0].ID)
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		a := customer("a")
		b := customer("b")
		totals := []customerTotals{
			{userID: a.ID, spent: 10},
			{userID: b.ID, spent: 20},
		}

		RankTopCustomers(totals, []models.User{a, b})

		assert.Equal(t, a.ID, totals[0].userID)
		assert.Equal(t, b.ID, totals[1].userID)
	})
}
