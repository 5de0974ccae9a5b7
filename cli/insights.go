package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"fincoach"
	"fincoach/insights"
	"fincoach/output"
	"fincoach/store"
)

type InsightsCmd struct {
	Store string `help:"Canonical transactions file." arg:"" optional:"" default:"transactions.csv"`

	Goal string `help:"Goal configuration YAML file." type:"existingfile" optional:""`
	Now  string `help:"Reference date (YYYY-MM-DD) instead of the wall clock, for reproducible runs."`

	CurrentSavings float64 `help:"Override the configured current savings."`
	MonthlyPace    float64 `help:"Override the configured monthly savings pace."`
	TargetAmount   float64 `help:"Override the configured target amount."`
	TargetDate     string  `help:"Override the configured target date (YYYY-MM-DD)."`
}

func (cmd *InsightsCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := runContext(globals)
	defer reportTelemetry(ctx.Stderr)

	goal, err := cmd.goalConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	if cmd.Now != "" {
		now, err = time.Parse("2006-01-02", cmd.Now)
		if err != nil {
			return fmt.Errorf("invalid --now date %q: %w", cmd.Now, err)
		}
	}

	records, err := store.NewFile(cmd.Store).Transactions()
	if err != nil {
		return err
	}
	txs := make([]fincoach.Transaction, len(records))
	for i, r := range records {
		txs[i] = r.Transaction
	}

	engine := insights.New(insights.WithNow(now))
	renderInsights(ctx.Stdout, engine.Build(runCtx, txs, goal))

	return nil
}

// goalFile mirrors the goal configuration YAML. Scalars are plain
// numbers in the file and converted to decimals at the boundary.
type goalFile struct {
	CurrentSavings float64 `yaml:"current_savings"`
	MonthlyPace    float64 `yaml:"monthly_pace"`
	TargetAmount   float64 `yaml:"target_amount"`
	TargetDate     string  `yaml:"target_date"`
}

// goalConfig merges the YAML file (when given) with flag overrides.
func (cmd *InsightsCmd) goalConfig() (fincoach.GoalConfig, error) {
	var file goalFile

	if cmd.Goal != "" {
		raw, err := os.ReadFile(cmd.Goal)
		if err != nil {
			return fincoach.GoalConfig{}, fmt.Errorf("failed to read goal file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return fincoach.GoalConfig{}, fmt.Errorf("failed to parse goal file %s: %w", cmd.Goal, err)
		}
	}

	if cmd.CurrentSavings != 0 {
		file.CurrentSavings = cmd.CurrentSavings
	}
	if cmd.MonthlyPace != 0 {
		file.MonthlyPace = cmd.MonthlyPace
	}
	if cmd.TargetAmount != 0 {
		file.TargetAmount = cmd.TargetAmount
	}
	if cmd.TargetDate != "" {
		file.TargetDate = cmd.TargetDate
	}

	return fincoach.GoalConfig{
		CurrentSavings: decimal.NewFromFloat(file.CurrentSavings),
		MonthlyPace:    decimal.NewFromFloat(file.MonthlyPace),
		TargetAmount:   decimal.NewFromFloat(file.TargetAmount),
		TargetDate:     file.TargetDate,
	}, nil
}

// renderInsights writes one styled line per insight.
func renderInsights(w io.Writer, list []fincoach.Insight) {
	if len(list) == 0 {
		printInfof(w, "No insights.")
		return
	}

	styles := output.NewStyles(w)
	for _, in := range list {
		_, _ = fmt.Fprintf(w, "%s %s %s\n",
			styles.Severity(in.Severity),
			styles.Dim(fmt.Sprintf("%-12s", in.Type)),
			in.Message,
		)
	}
}
