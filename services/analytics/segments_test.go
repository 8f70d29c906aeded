package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customer(name string) models.User {
	return models.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  name,
		Email: name + "@example.com",
		Role:  models.RoleCustomer,
	}
}

func totalsFor(u models.User, spent float64) customerTotals {
	return customerTotals{userID: u.ID, spent: spent}
}

func TestSegmentCustomers(t *testing.T) {
	t.Run("tiers split on strict thresholds", func(t *testing.T) {
		a := customer("a") // exactly 1000 is still medium
		b := customer("b")
		c := customer("c") // exactly 100 is still low
		d := customer("d")

		segments := SegmentCustomers(
			[]models.User{a, b, c, d},
			[]customerTotals{
				totalsFor(a, 1000),
				totalsFor(b, 1000.01),
				totalsFor(c, 100),
				totalsFor(d, 100.01),
			},
		)

		require.Len(t, segments, 3)
		assert.Equal(t, SegmentHigh, segments[0].Segment)
		assert.Equal(t, 1, segments[0].Count)
		assert.Equal(t, SegmentMedium, segments[1].Segment)
		assert.Equal(t, 2, segments[1].Count)
		assert.Equal(t, SegmentLow, segments[2].Segment)
		assert.Equal(t, 1, segments[2].Count)
	})

	t.Run("customers without transactions count as low value", func(t *testing.T) {
		a := customer("a")
		b := customer("b")

		segments := SegmentCustomers(
			[]models.User{a, b},
			[]customerTotals{totalsFor(a, 1500)},
		)

		assert.Equal(t, 1, segments[0].Count) // high
		assert.Equal(t, 0, segments[1].Count) // medium
		assert.Equal(t, 1, segments[2].Count) // low

		sum := segments[0].Count + segments[1].Count + segments[2].Count
		assert.Equal(t, 2, sum)
	})

	t.Run("counts always sum to the customer total", func(t *testing.T) {
		customers := []models.User{}
		totals := []customerTotals{}
		spends := []float64{10, 50, 120, 800, 1200, 0, 99.99, 100.01, 5000}
		for i, s := range spends {
			u := customer(string(rune('a' + i)))
			customers = append(customers, u)
			totals = append(totals, totalsFor(u, s))
		}

		segments := SegmentCustomers(customers, totals)

		sum := 0
		for _, s := range segments {
			sum += s.Count
		}
		assert.Equal(t, len(customers), sum)
	})

	t.Run("percentages are rounded shares", func(t *testing.T) {
		a := customer("a")
		b := customer("b")
		c := customer("c")

		segments := SegmentCustomers(
			[]models.User{a, b, c},
			[]customerTotals{totalsFor(a, 2000)},
		)

		// 1/3 and 2/3 round to 33 and 67
		assert.Equal(t, 33, segments[0].Percentage)
		assert.Equal(t, 0, segments[1].Percentage)
		assert.Equal(t, 67, segments[2].Percentage)
	})

	t.Run("no customers yields zero counts and zero percentages", func(t *testing.T) {
		segments := SegmentCustomers(nil, nil)

		require.Len(t, segments, 3)
		for _, s := range segments {
			assert.Equal(t, 0, s.Count)
			assert.Equal(t, 0, s.Percentage)
		}
	})
}
