package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"fincoach"
)

// forecast projects savings at the configured monthly pace against the
// target. A zero target disables the forecast; an unparseable target
// date is treated the same way, since no horizon can be computed.
// The horizon rounds the remaining time to 30-day months, never below
// one month.
func (e *Engine) forecast(goal fincoach.GoalConfig) []fincoach.Insight {
	if goal.TargetAmount.IsZero() {
		return nil
	}
	target, err := time.Parse("2006-01-02", goal.TargetDate)
	if err != nil {
		return nil
	}

	monthsLeft := int64(math.Round(target.Sub(e.now).Hours() / 24 / 30))
	if monthsLeft < 1 {
		monthsLeft = 1
	}
	projected := goal.CurrentSavings.Add(goal.MonthlyPace.Mul(decimal.NewFromInt(monthsLeft)))

	if projected.GreaterThanOrEqual(goal.TargetAmount) {
		return []fincoach.Insight{{
			Type:     fincoach.Forecast,
			Severity: fincoach.Info,
			Message:  fmt.Sprintf("On track for $%s by %s.", goal.TargetAmount, goal.TargetDate),
		}}
	}

	need := goal.TargetAmount.Sub(projected).Div(decimal.NewFromInt(monthsLeft)).Ceil()
	return []fincoach.Insight{{
		Type:     fincoach.Forecast,
		Severity: fincoach.Warn,
		Message:  fmt.Sprintf("Off track. Need about $%s/month to hit $%s by %s.", need, goal.TargetAmount, goal.TargetDate),
	}}
}
