package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/nyashaushe/loyaltAI/models"
)

// maxInsights caps the advisory list shown on the dashboard.
const maxInsights = 5

// ruleInputs carries the aggregates the insight rules read. All fields are
// already computed; rules never touch raw collections.
type ruleInputs struct {
	monthlyRevenue    []models.MonthlyRevenue
	totalRevenue      float64
	totalCustomers    int
	totalPointsIssued int
	rewardUsageTotal  int
	highValuePercent  int
	now               time.Time
}

// generateInsights evaluates the fixed rule list in priority order. Each
// rule emits at most one insight; the list is truncated to maxInsights and
// the fallback rule guarantees it is never empty.
func generateInsights(in ruleInputs) []models.Insight {
	insights := []models.Insight{}

	// Revenue momentum: month-over-month change across the last two series
	// entries. Skipped entirely when the prior month had no revenue, since
	// the ratio would be undefined.
	if n := len(in.monthlyRevenue); n >= 2 {
		prior := in.monthlyRevenue[n-2].Revenue
		latest := in.monthlyRevenue[n-1].Revenue
		if prior != 0 {
			growth := ((latest - prior) / prior) * 100
			if growth > 10 {
				insights = append(insights, models.Insight{
					Type:        models.InsightSuccess,
					Title:       "Strong Revenue Growth",
					Description: fmt.Sprintf("Revenue increased by %.1f%% this month compared to last month.", growth),
					Impact:      "Consider expanding successful promotions or marketing campaigns.",
				})
			} else if growth < -5 {
				insights = append(insights, models.Insight{
					Type:        models.InsightWarning,
					Title:       "Revenue Decline Detected",
					Description: fmt.Sprintf("Revenue decreased by %.1f%% this month.", math.Abs(growth)),
					Impact:      "Review recent changes and consider promotional activities to boost sales.",
				})
			}
		}
	}

	// Customer value
	if in.totalCustomers > 0 {
		avgSpending := in.totalRevenue / float64(in.totalCustomers)
		if avgSpending > 500 {
			insights = append(insights, models.Insight{
				Type:        models.InsightSuccess,
				Title:       "High Customer Value",
				Description: fmt.Sprintf("Average customer spending is $%.0f, indicating strong customer loyalty.", avgSpending),
				Impact:      "Focus on retention strategies and premium rewards for high-value customers.",
			})
		}
	}

	// Redemption utilization
	if float64(in.rewardUsageTotal) < float64(in.totalPointsIssued)*0.1 {
		insights = append(insights, models.Insight{
			Type:        models.InsightOpportunity,
			Title:       "Low Points Redemption",
			Description: "Less than 10% of issued points have been redeemed.",
			Impact:      "Consider more attractive rewards or point expiration policies to increase engagement.",
		})
	}

	// High-value concentration
	if in.highValuePercent > 20 {
		insights = append(insights, models.Insight{
			Type:        models.InsightSuccess,
			Title:       "Strong High-Value Customer Base",
			Description: fmt.Sprintf("%d%% of customers are high-value spenders.", in.highValuePercent),
			Impact:      "Excellent customer quality. Focus on premium experiences and exclusive rewards.",
		})
	}

	// Seasonal
	if m := in.now.Month(); m == time.December || m == time.January {
		insights = append(insights, models.Insight{
			Type:        models.InsightOpportunity,
			Title:       "Holiday Season Opportunity",
			Description: "Holiday season typically sees increased spending and gift-giving.",
			Impact:      "Launch holiday-themed promotions and gift card incentives to maximize seasonal revenue.",
		})
	}

	// Fallback
	if len(insights) == 0 {
		insights = append(insights, models.Insight{
			Type:        models.InsightOpportunity,
			Title:       "Growth Opportunity",
			Description: "Your loyalty program is performing well with room for optimization.",
			Impact:      "Consider A/B testing different reward structures and promotional strategies.",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
