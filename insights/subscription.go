package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fincoach"
)

var amountTolerance = decimal.NewFromFloat(0.15)

// subscriptions flags merchants with at least one billing cycle: a pair
// of consecutive charges 27-33 days apart whose amounts differ by at
// most 15% of the earlier charge. The reported average covers all of the
// merchant's charges, not just the cyclic pairs.
func (e *Engine) subscriptions(txs []fincoach.Transaction) []fincoach.Insight {
	byMerchant := groupBy(txs, func(t fincoach.Transaction) string { return t.Merchant })

	var out []fincoach.Insight
	for _, merchant := range byMerchant.keys {
		list := append([]fincoach.Transaction(nil), byMerchant.members[merchant]...)
		if len(list) < 2 {
			continue
		}
		sort.SliceStable(list, func(i, j int) bool { return list[i].Date < list[j].Date })

		cycles := 0
		for i := 1; i < len(list); i++ {
			days, ok := daysBetween(list[i-1].Date, list[i].Date)
			if !ok {
				continue
			}
			diff := list[i].Amount.Sub(list[i-1].Amount).Abs()
			similar := diff.LessThanOrEqual(list[i-1].Amount.Mul(amountTolerance))
			if days >= 27 && days <= 33 && similar {
				cycles++
			}
		}
		if cycles == 0 {
			continue
		}

		avg := sumAmounts(list).Div(decimal.NewFromInt(int64(len(list))))
		out = append(out, fincoach.Insight{
			Type:     fincoach.RecurringCharge,
			Severity: fincoach.Warn,
			Message:  fmt.Sprintf("Recurring charge: %s ~ $%s/mo.", merchant, avg.StringFixed(2)),
		})
	}

	return out
}

// daysBetween returns the gap between two ISO dates in fractional days.
// Unparseable dates (pass-through date strings from imports) never form
// a cycle.
func daysBetween(earlier, later string) (float64, bool) {
	a, err := time.Parse("2006-01-02", earlier)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse("2006-01-02", later)
	if err != nil {
		return 0, false
	}
	return b.Sub(a).Hours() / 24, true
}
