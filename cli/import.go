package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"

	"fincoach/importer"
	"fincoach/output"
	"fincoach/store"
	"fincoach/telemetry"
)

type ImportCmd struct {
	File  string `help:"CSV or XLSX transaction file to import." arg:"" type:"existingfile"`
	Store string `help:"Canonical transactions file." default:"transactions.csv"`
}

func (cmd *ImportCmd) Run(ctx *kong.Context, globals *Globals) error {
	runCtx, reportTelemetry := runContext(globals)
	defer reportTelemetry(ctx.Stderr)

	timer := telemetry.FromContext(runCtx).Start("import " + filepath.Base(cmd.File))
	defer timer.End()

	readTimer := timer.Child("read")
	txs, err := importer.ReadFile(cmd.File)
	readTimer.End()
	if err != nil {
		return err
	}

	st := store.NewFile(cmd.Store)

	appendTimer := timer.Child("append")
	for _, tx := range txs {
		if _, err := st.Append(tx); err != nil {
			appendTimer.End()
			return err
		}
	}
	appendTimer.End()

	// Import metadata is best-effort; a failure here must not fail the
	// import itself.
	size := int64(0)
	if info, err := os.Stat(cmd.File); err == nil {
		size = info.Size()
	}
	if err := st.AddImport(store.ImportRecord{
		FileName:         filepath.Base(cmd.File),
		FileSize:         size,
		ImportedAt:       time.Now(),
		TransactionCount: len(txs),
	}); err != nil {
		printWarnf(ctx.Stderr, "failed to record import metadata: %v", err)
	}

	var total decimal.Decimal
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}

	styles := output.NewStyles(ctx.Stdout)
	printSuccess(ctx.Stdout, "Imported "+styles.FilePath(filepath.Base(cmd.File)))
	printInfof(ctx.Stdout, "%d transaction(s) totaling %s added to %s",
		len(txs), styles.Amount("$"+total.String()), styles.FilePath(cmd.Store))

	return nil
}
