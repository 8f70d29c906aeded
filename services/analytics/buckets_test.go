package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txnAt(ts time.Time, amount float64) models.Transaction {
	return models.Transaction{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    uuid.Must(uuid.NewV7()),
		Amount:    amount,
		Timestamp: ts,
	}
}

func TestMonthBuckets(t *testing.T) {
	now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("partitions current and previous month", func(t *testing.T) {
		transactions := []models.Transaction{
			txnAt(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), 10),  // first instant of current month
			txnAt(time.Date(2025, time.June, 14, 9, 0, 0, 0, time.UTC), 20), // mid current month
			txnAt(time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC), 30),
			txnAt(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), 40), // first instant of previous month
			txnAt(time.Date(2025, time.April, 30, 23, 59, 59, 0, time.UTC), 50),
		}

		current, previous := MonthBuckets(transactions, now)

		require.Len(t, current, 2)
		require.Len(t, previous, 2)
		assert.Equal(t, 10.0, current[0].Amount)
		assert.Equal(t, 20.0, current[1].Amount)
		assert.Equal(t, 30.0, previous[0].Amount)
		assert.Equal(t, 40.0, previous[1].Amount)
	})

	t.Run("empty input yields empty buckets", func(t *testing.T) {
		current, previous := MonthBuckets(nil, now)
		assert.Empty(t, current)
		assert.Empty(t, previous)
	})
}

func TestMonthlyRevenueSeries(t *testing.T) {
	t.Run("six buckets oldest first", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		transactions := []models.Transaction{
			txnAt(time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), 100),
			txnAt(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), 50),
			txnAt(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), 75),
			txnAt(time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), 999), // outside the window
		}

		series := MonthlyRevenueSeries(transactions, now)

		require.Len(t, series, 6)
		assert.Equal(t, "Jan 2025", series[0].Month)
		assert.Equal(t, "Feb 2025", series[1].Month)
		assert.Equal(t, "Mar 2025", series[2].Month)
		assert.Equal(t, "Jun 2025", series[5].Month)
		assert.Equal(t, 75.0, series[2].Revenue)
		assert.Equal(t, 150.0, series[5].Revenue)
		assert.Equal(t, 0.0, series[0].Revenue)
	})

	t.Run("window crosses a year boundary", func(t *testing.T) {
		now := time.Date(2025, time.February, 3, 8, 0, 0, 0, time.UTC)
		transactions := []models.Transaction{
			txnAt(time.Date(2024, time.September, 5, 0, 0, 0, 0, time.UTC), 42),
		}

		series := MonthlyRevenueSeries(transactions, now)

		require.Len(t, series, 6)
		assert.Equal(t, "Sep 2024", series[0].Month)
		assert.Equal(t, "Dec 2024", series[3].Month)
		assert.Equal(t, "Feb 2025", series[5].Month)
		assert.Equal(t, 42.0, series[0].Revenue)
	})

	t.Run("future transactions fall outside the last bucket", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
		transactions := []models.Transaction{
			txnAt(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), 500),
		}

		series := MonthlyRevenueSeries(transactions, now)

		for _, bucket := range series {
			assert.Equal(t, 0.0, bucket.Revenue)
		}
	})
}
