package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"fincoach"
)

var (
	deltaThreshold = decimal.NewFromFloat(0.4)
	deltaFloor     = decimal.NewFromInt(50)

	coffeeCap    = decimal.NewFromInt(100)
	deliveryCap  = decimal.NewFromInt(150)
	groceriesCap = decimal.NewFromInt(300)
)

// trend compares each category's current-month spend against its average
// over the three most recent prior months found in the history. A
// category missing from one of those months contributes zero to that
// month, which deflates the baseline for sparse categories; that is
// long-standing behavior the alert wording depends on.
func (e *Engine) trend(txs []fincoach.Transaction) []fincoach.Insight {
	currentMonth := e.now.Format("2006-01")

	var thisMonth []fincoach.Transaction
	for _, tx := range txs {
		if fincoach.MonthKey(tx.Date) == currentMonth {
			thisMonth = append(thisMonth, tx)
		}
	}
	byCategory := groupBy(thisMonth, func(t fincoach.Transaction) string { return string(t.Category) })

	baseline := monthlyBaseline(txs)

	var out []fincoach.Insight
	for _, cat := range byCategory.keys {
		current := sumAmounts(byCategory.members[cat])

		if base := baseline[cat]; base.IsPositive() {
			delta := current.Sub(base).Div(base)
			if delta.GreaterThan(deltaThreshold) && current.GreaterThan(deltaFloor) {
				out = append(out, fincoach.Insight{
					Type:     fincoach.Trend,
					Severity: fincoach.Info,
					Message: fmt.Sprintf("%s spending is up %s%% this month ($%s). Consider reducing by 30%% to save ~$%s/month.",
						cat, delta.Mul(decimal.NewFromInt(100)).Round(0), current.StringFixed(0), current.Mul(decimal.NewFromFloat(0.3)).Round(0)),
				})
			}
		}

		switch {
		case cat == string(fincoach.Coffee) && current.GreaterThan(coffeeCap):
			out = append(out, fincoach.Insight{
				Type:     fincoach.Trend,
				Severity: fincoach.Info,
				Message: fmt.Sprintf("Coffee spend is $%s this month. Brewing at home 3x/week could save ~$%s/month!",
					current.StringFixed(0), current.Mul(decimal.NewFromFloat(0.6)).Round(0)),
			})
		case cat == string(fincoach.FoodDelivery) && current.GreaterThan(deliveryCap):
			out = append(out, fincoach.Insight{
				Type:     fincoach.Trend,
				Severity: fincoach.Warn,
				Message: fmt.Sprintf("Food delivery: $%s this month. Meal prep could save ~$%s/month.",
					current.StringFixed(0), current.Mul(decimal.NewFromFloat(0.5)).Round(0)),
			})
		case cat == string(fincoach.Groceries) && current.GreaterThan(groceriesCap):
			out = append(out, fincoach.Insight{
				Type:     fincoach.Trend,
				Severity: fincoach.Info,
				Message: fmt.Sprintf("Grocery spending is $%s. Try buying generic brands to save 15-20%% (~$%s/month).",
					current.StringFixed(0), current.Mul(decimal.NewFromFloat(0.17)).Round(0)),
			})
		}
	}

	return out
}

// monthlyBaseline averages each category's monthly total over the three
// distinct calendar months immediately before the most recent month in
// the history (fewer when the history is shorter). With no prior months
// every baseline is zero and the delta check never fires.
func monthlyBaseline(txs []fincoach.Transaction) map[string]decimal.Decimal {
	byMonth := groupBy(txs, func(t fincoach.Transaction) string { return fincoach.MonthKey(t.Date) })

	months := append([]string(nil), byMonth.keys...)
	sort.Strings(months)

	n := len(months)
	lo := n - 4
	if lo < 0 {
		lo = 0
	}
	hi := n - 1
	if hi < lo {
		return map[string]decimal.Decimal{}
	}
	window := months[lo:hi]

	baseline := make(map[string]decimal.Decimal)
	if len(window) == 0 {
		return baseline
	}

	totals := make(map[string]decimal.Decimal)
	for _, m := range window {
		for _, tx := range byMonth.members[m] {
			cat := string(tx.Category)
			totals[cat] = totals[cat].Add(tx.Amount)
		}
	}

	months3 := decimal.NewFromInt(int64(len(window)))
	for cat, total := range totals {
		baseline[cat] = total.Div(months3)
	}
	return baseline
}

func sumAmounts(txs []fincoach.Transaction) decimal.Decimal {
	var sum decimal.Decimal
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}
