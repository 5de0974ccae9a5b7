// Package fincoach defines the canonical value types shared by the
// transaction pipeline: the normalized transaction record, the derived
// insight, and the savings-goal configuration.
package fincoach

import "github.com/shopspring/decimal"

// Transaction is one normalized financial transaction. Dates are ISO
// "YYYY-MM-DD" strings so that lexicographic order is calendar order.
// A positive amount is an expense; imported records may carry a negative
// amount for credits.
type Transaction struct {
	Date     string
	Amount   decimal.Decimal
	Merchant string
	Category Category
	Source   string
	Memo     string
}

// MonthKey returns the "YYYY-MM" prefix of an ISO date string.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// Category is one entry of the fixed spending taxonomy, or "Other".
type Category string

const (
	Coffee         Category = "Coffee"
	FoodDelivery   Category = "Food Delivery"
	Groceries      Category = "Groceries"
	Gas            Category = "Gas"
	Transportation Category = "Transportation"
	Utilities      Category = "Utilities"
	Electronics    Category = "Electronics"
	Clothing       Category = "Clothing"
	Entertainment  Category = "Entertainment"
	Dining         Category = "Dining"
	Fees           Category = "Fees"
	Subscription   Category = "Subscription"
	Shopping       Category = "Shopping"
	Other          Category = "Other"
)

// Categories lists the taxonomy in classifier priority order, with the
// "Other" fallthrough last.
var Categories = []Category{
	Coffee, FoodDelivery, Groceries, Gas, Transportation, Utilities,
	Electronics, Clothing, Entertainment, Dining, Fees, Subscription,
	Shopping, Other,
}

// ValidCategory reports whether name is part of the taxonomy.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if string(c) == name {
			return true
		}
	}
	return false
}

// InsightType identifies which analysis produced an insight.
type InsightType string

const (
	Trend           InsightType = "trend"
	RecurringCharge InsightType = "subscription"
	Anomaly         InsightType = "anomaly"
	Forecast        InsightType = "forecast"
)

// Severity ranks how urgently an insight should be surfaced.
type Severity string

const (
	Info  Severity = "info"
	Warn  Severity = "warn"
	Alert Severity = "alert"
)

// Insight is a single derived observation. It is a pure value: no
// identity, no persistence, recomputed in full on every engine call.
type Insight struct {
	Type     InsightType
	Severity Severity
	Message  string
}

// GoalConfig carries the savings-goal scalars supplied per insight
// computation. TargetDate is an ISO "YYYY-MM-DD" string.
type GoalConfig struct {
	CurrentSavings decimal.Decimal
	MonthlyPace    decimal.Decimal
	TargetAmount   decimal.Decimal
	TargetDate     string
}
