package analytics

import (
	"testing"
	"time"

	"github.com/nyashaushe/loyaltAI/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revSeries(values ...float64) []models.MonthlyRevenue {
	series := make([]models.MonthlyRevenue, 0, len(values))
	for _, v := range values {
		series = append(series, models.MonthlyRevenue{Month: "x", Revenue: v})
	}
	return series
}

// quietInputs fires no rule except the fallback: modest growth, low average
// spend, healthy redemption, small high-value share, mid-year date.
func quietInputs() ruleInputs {
	return ruleInputs{
		monthlyRevenue:    revSeries(100, 105),
		totalRevenue:      1000,
		totalCustomers:    10,
		totalPointsIssued: 100,
		rewardUsageTotal:  50,
		highValuePercent:  10,
		now:               time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	}
}

func titles(insights []models.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, i := range insights {
		out = append(out, i.Title)
	}
	return out
}

func TestGenerateInsights(t *testing.T) {
	t.Run("strong growth above ten percent", func(t *testing.T) {
		in := quietInputs()
		in.monthlyRevenue = revSeries(100, 120)

		insights := generateInsights(in)

		require.NotEmpty(t, insights)
		assert.Equal(t, "Strong Revenue Growth", insights[0].Title)
		assert.Equal(t, models.InsightSuccess, insights[0].Type)
		assert.Contains(t, insights[0].Description, "20.0%")
	})

	t.Run("decline below minus five percent", func(t *testing.T) {
		in := quietInputs()
		in.monthlyRevenue = revSeries(100, 90)

		insights := generateInsights(in)

		require.NotEmpty(t, insights)
		assert.Equal(t, "Revenue Decline Detected", insights[0].Title)
		assert.Equal(t, models.InsightWarning, insights[0].Type)
		assert.Contains(t, insights[0].Description, "10.0%") // absolute value, no minus sign
	})

	t.Run("growth inside the dead zone fires nothing", func(t *testing.T) {
		for _, latest := range []float64{96, 100, 109} {
			in := quietInputs()
			in.monthlyRevenue = revSeries(100, latest)

			insights := generateInsights(in)

			assert.NotContains(t, titles(insights), "Strong Revenue Growth")
			assert.NotContains(t, titles(insights), "Revenue Decline Detected")
		}
	})

	t.Run("momentum skipped when prior month had no revenue", func(t *testing.T) {
		in := quietInputs()
		in.monthlyRevenue = revSeries(0, 5000)

		insights := generateInsights(in)

		assert.NotContains(t, titles(insights), "Strong Revenue Growth")
		assert.NotContains(t, titles(insights), "Revenue Decline Detected")
	})

	t.Run("high customer value above 500 average", func(t *testing.T) {
		in := quietInputs()
		in.totalRevenue = 6000
		in.totalCustomers = 10 // avg 600

		insights := generateInsights(in)

		require.NotEmpty(t, insights)
		assert.Equal(t, "High Customer Value", insights[0].Title)
		assert.Contains(t, insights[0].Description, "$600")
	})

	t.Run("customer value skipped with no customers", func(t *testing.T) {
		in := quietInputs()
		in.totalRevenue = 6000
		in.totalCustomers = 0

		insights := generateInsights(in)

		assert.NotContains(t, titles(insights), "High Customer Value")
	})

	t.Run("low redemption under ten percent of issued points", func(t *testing.T) {
		in := quietInputs()
		in.totalPointsIssued = 100
		in.rewardUsageTotal = 5

		insights := generateInsights(in)

		require.NotEmpty(t, insights)
		assert.Equal(t, "Low Points Redemption", insights[0].Title)
		assert.Equal(t, models.InsightOpportunity, insights[0].Type)
	})

	t.Run("redemption rule quiet when nothing issued", func(t *testing.T) {
		in := quietInputs()
		in.totalPointsIssued = 0
		in.rewardUsageTotal = 0

		insights := generateInsights(in)

		assert.NotContains(t, titles(insights), "Low Points Redemption")
	})

	t.Run("high value concentration above twenty percent", func(t *testing.T) {
		in := quietInputs()
		in.highValuePercent = 25

		insights := generateInsights(in)

		require.NotEmpty(t, insights)
		assert.Equal(t, "Strong High-Value Customer Base", insights[0].Title)
		assert.Contains(t, insights[0].Description, "25%")
	})

	t.Run("seasonal rule in december and january only", func(t *testing.T) {
		for _, month := range []time.Month{time.December, time.January} {
			in := quietInputs()
			in.now = time.Date(2025, month, 10, 0, 0, 0, 0, time.UTC)

			insights := generateInsights(in)

			assert.Contains(t, titles(insights), "Holiday Season Opportunity")
		}

		in := quietInputs()
		in.now = time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)
		assert.NotContains(t, titles(generateInsights(in)), "Holiday Season Opportunity")
	})

	t.Run("fallback when nothing fires", func(t *testing.T) {
		insights := generateInsights(quietInputs())

		require.Len(t, insights, 1)
		assert.Equal(t, "Growth Opportunity", insights[0].Title)
		assert.Equal(t, models.InsightOpportunity, insights[0].Type)
	})

	t.Run("fallback suppressed when any rule fired", func(t *testing.T) {
		in := quietInputs()
		in.highValuePercent = 25

		assert.NotContains(t, titles(generateInsights(in)), "Growth Opportunity")
	})

	t.Run("all rules firing stays within the cap", func(t *testing.T) {
		in := ruleInputs{
			monthlyRevenue:    revSeries(100, 150), // +50%
			totalRevenue:      60000,
			totalCustomers:    100, // avg 600
			totalPointsIssued: 1000,
			rewardUsageTotal:  10, // 1%
			highValuePercent:  30,
			now:               time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC),
		}

		insights := generateInsights(in)

		require.Len(t, insights, 5)
		assert.Equal(t, []string{
			"Strong Revenue Growth",
			"High Customer Value",
			"Low Points Redemption",
			"Strong High-Value Customer Base",
			"Holiday Season Opportunity",
		}, titles(insights))
	})
}
