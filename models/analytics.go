package models

// Insight severity kinds
const (
	InsightOpportunity = "opportunity"
	InsightWarning     = "warning"
	InsightSuccess     = "success"
)

// AnalyticsSnapshot is the full dashboard payload. It is derived, never
// persisted, and recomputed from scratch on every request.
type AnalyticsSnapshot struct {
	TotalCustomers      int                `json:"total_customers"`       // Customers with role "customer"
	TotalRevenue        float64            `json:"total_revenue"`         // Sum of all transaction amounts
	TotalPointsIssued   int                `json:"total_points_issued"`   // Sum of points earned across all transactions
	TotalTransactions   int                `json:"total_transactions"`    // Number of transactions
	AvgTransactionValue float64            `json:"avg_transaction_value"` // Revenue / transactions, 0 when empty
	CustomerGrowth      float64            `json:"customer_growth"`       // % change in new customers vs last month
	RevenueGrowth       float64            `json:"revenue_growth"`        // % change in revenue vs last month
	TopCustomers        []TopCustomer      `json:"top_customers"`
	MonthlyRevenue      []MonthlyRevenue   `json:"monthly_revenue"`
	CustomerSegments    []CustomerSegment  `json:"customer_segments"`
	Insights            []Insight          `json:"ai_insights"`
}

// TopCustomer is one row of the spend leaderboard.
type TopCustomer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`  // "Unknown" when the customer record is missing
	Email      string  `json:"email"` // empty when the customer record is missing
	TotalSpent float64 `json:"total_spent"`
	Points     int     `json:"points"` // earned minus redeemed; display figure, may be negative
	VisitCount int     `json:"visit_count"`
}

// MonthlyRevenue is one bucket of the trailing six-month revenue series.
type MonthlyRevenue struct {
	Month   string  `json:"month"` // short month name + year, e.g. "Aug 2026"
	Revenue float64 `json:"revenue"`
}

// CustomerSegment is one value tier of the customer base.
type CustomerSegment struct {
	Segment    string `json:"segment"` // "High Value", "Medium Value", "Low Value"
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"` // integer-rounded % of total customers
}

// Insight is a heuristic advisory generated from the aggregates.
type Insight struct {
	Type        string `json:"type"` // opportunity | warning | success
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}
