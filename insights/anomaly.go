package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fincoach"
)

var anomalyFloor = decimal.NewFromInt(50)

const (
	anomalyWindowDays = 60
	anomalyZThreshold = 3
)

// anomalies flags transactions from the last 60 days whose amount sits
// more than three robust z-scores from their category's median. The
// robust score uses MAD rather than standard deviation so a single large
// outlier cannot inflate its own reference statistic.
func (e *Engine) anomalies(txs []fincoach.Transaction) []fincoach.Insight {
	var recent []fincoach.Transaction
	for _, tx := range txs {
		d, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			continue
		}
		if e.now.Sub(d).Hours()/24 <= anomalyWindowDays {
			recent = append(recent, tx)
		}
	}

	byCategory := groupBy(recent, func(t fincoach.Transaction) string { return string(t.Category) })

	var out []fincoach.Insight
	for _, cat := range byCategory.keys {
		list := byCategory.members[cat]
		amounts := make([]float64, len(list))
		for i, tx := range list {
			amounts[i] = tx.Amount.InexactFloat64()
		}

		for _, tx := range list {
			if tx.Amount.GreaterThan(anomalyFloor) && robustZ(tx.Amount.InexactFloat64(), amounts) > anomalyZThreshold {
				out = append(out, fincoach.Insight{
					Type:     fincoach.Anomaly,
					Severity: fincoach.Alert,
					Message:  fmt.Sprintf("Unusual %s: $%s at %s on %s.", cat, tx.Amount.StringFixed(2), tx.Merchant, tx.Date),
				})
			}
		}
	}

	return out
}
