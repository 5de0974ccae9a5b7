package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"fincoach"
	"fincoach/importer"
	"fincoach/output"
	"fincoach/store"
)

type RecategorizeCmd struct {
	ID       string `help:"Record identifier (row ordinal for file stores)." arg:""`
	Category string `help:"New category; must be part of the taxonomy." arg:""`

	Store string `help:"Canonical transactions file." default:"transactions.csv"`
}

func (cmd *RecategorizeCmd) Run(ctx *kong.Context) error {
	if !fincoach.ValidCategory(cmd.Category) && cmd.Category != importer.DefaultCategory {
		names := make([]string, len(fincoach.Categories))
		for i, c := range fincoach.Categories {
			names[i] = string(c)
		}
		return fmt.Errorf("unknown category %q (expected one of: %s)", cmd.Category, strings.Join(names, ", "))
	}

	st := store.NewFile(cmd.Store)
	if err := st.UpdateCategory(cmd.ID, fincoach.Category(cmd.Category)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			printError(ctx.Stderr, fmt.Sprintf("no record %q in %s", cmd.ID, cmd.Store))
			return NewCommandError(1)
		}
		return err
	}

	styles := output.NewStyles(ctx.Stdout)
	printSuccess(ctx.Stdout, fmt.Sprintf("Record %s recategorized as %s", cmd.ID, styles.Category(cmd.Category)))
	return nil
}
