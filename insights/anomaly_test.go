package insights_test

import (
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"fincoach"
	"fincoach/insights"
)

func TestAnomalyDetected(t *testing.T) {
	engine := insights.New(insights.WithNow(at(t, "2024-04-20")))

	txs := []fincoach.Transaction{
		tx("2024-04-01", 18, "Uniqlo", fincoach.Clothing),
		tx("2024-04-03", 22, "Uniqlo", fincoach.Clothing),
		tx("2024-04-05", 20, "Uniqlo", fincoach.Clothing),
		tx("2024-04-07", 19, "Uniqlo", fincoach.Clothing),
		tx("2024-04-09", 21, "Uniqlo", fincoach.Clothing),
		tx("2024-04-11", 500, "Gucci", fincoach.Clothing),
	}

	out := engine.Build(context.Background(), txs, fincoach.GoalConfig{})

	alerts := filterType(out, fincoach.Anomaly)
	assert.Equal(t, 1, len(alerts))
	assert.Equal(t, fincoach.Alert, alerts[0].Severity)
	assert.Equal(t, "Unusual Clothing: $500.00 at Gucci on 2024-04-11.", alerts[0].Message)
}

// Small amounts never alert no matter how far from the category median.
func TestAnomalyAmountFloor(t *testing.T) {
	engine := insights.New(insights.WithNow(at(t, "2024-04-20")))

	txs := []fincoach.Transaction{
		tx("2024-04-01", 1, "Kiosk", fincoach.Shopping),
		tx("2024-04-03", 1, "Kiosk", fincoach.Shopping),
		tx("2024-04-05", 1, "Kiosk", fincoach.Shopping),
		tx("2024-04-07", 1, "Kiosk", fincoach.Shopping),
		tx("2024-04-09", 45, "Bazaar", fincoach.Shopping),
	}

	out := engine.Build(context.Background(), txs, fincoach.GoalConfig{})
	assert.Equal(t, 0, len(filterType(out, fincoach.Anomaly)))
}

func TestAnomalyWindowExcludesOldTransactions(t *testing.T) {
	engine := insights.New(insights.WithNow(at(t, "2024-06-15")))

	// The outlier sits outside the 60-day window; the cluster inside it
	// is unremarkable on its own.
	txs := []fincoach.Transaction{
		tx("2024-01-10", 500, "Gucci", fincoach.Clothing),
		tx("2024-06-01", 18, "Uniqlo", fincoach.Clothing),
		tx("2024-06-03", 22, "Uniqlo", fincoach.Clothing),
		tx("2024-06-05", 20, "Uniqlo", fincoach.Clothing),
	}

	out := engine.Build(context.Background(), txs, fincoach.GoalConfig{})
	assert.Equal(t, 0, len(filterType(out, fincoach.Anomaly)))
}

// With identical amounts the MAD is zero and falls back to one, so a
// uniform run of large charges stays quiet.
func TestAnomalyUniformAmounts(t *testing.T) {
	engine := insights.New(insights.WithNow(at(t, "2024-04-20")))

	txs := []fincoach.Transaction{
		tx("2024-04-01", 200, "United", fincoach.Transportation),
		tx("2024-04-08", 200, "United", fincoach.Transportation),
		tx("2024-04-15", 200, "United", fincoach.Transportation),
	}

	out := engine.Build(context.Background(), txs, fincoach.GoalConfig{})
	assert.Equal(t, 0, len(filterType(out, fincoach.Anomaly)))
}

func filterType(list []fincoach.Insight, typ fincoach.InsightType) []fincoach.Insight {
	var out []fincoach.Insight
	for _, in := range list {
		if in.Type == typ {
			out = append(out, in)
		}
	}
	return out
}
