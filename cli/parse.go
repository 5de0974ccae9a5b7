package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"fincoach/statement"
)

type ParseCmd struct {
	File   FileOrStdin `help:"Statement text file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Year   int         `help:"Calendar year used to expand MM/DD dates (defaults to the current year)."`
	Source string      `help:"Source label stamped on every transaction." default:"Credit Card"`
	Debug  bool        `help:"Dump the parsed transactions instead of emitting CSV."`
}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	runCtx, reportTelemetry := runContext(globals)
	defer reportTelemetry(ctx.Stderr)

	opts := []statement.Option{statement.WithSource(cmd.Source)}
	if cmd.Year != 0 {
		opts = append(opts, statement.WithYear(cmd.Year))
	}

	result := statement.New(opts...).Parse(runCtx, string(cmd.File.Contents))

	for _, skipped := range result.Skipped {
		printWarnf(ctx.Stderr, "line %d skipped: %s", skipped.Line, skipped.Reason)
	}

	if cmd.Debug {
		repr.Println(result.Transactions)
		return nil
	}

	_, _ = fmt.Fprintln(ctx.Stdout, result.CSV())
	printInfof(ctx.Stderr, "%d transaction(s), %d line(s) skipped", len(result.Transactions), len(result.Skipped))

	return nil
}
