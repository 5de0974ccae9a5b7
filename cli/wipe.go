package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"fincoach/store"
)

type WipeCmd struct {
	Store string `help:"Canonical transactions file." default:"transactions.csv"`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (cmd *WipeCmd) Run(ctx *kong.Context) error {
	st := store.NewFile(cmd.Store)

	records, err := st.Transactions()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		printInfof(ctx.Stdout, "%s is already empty", cmd.Store)
		return nil
	}

	if !cmd.Force {
		confirmed, err := promptYesNo(fmt.Sprintf("Delete all %d record(s) in %s?", len(records), cmd.Store))
		if err != nil {
			return err
		}
		if !confirmed {
			printInfof(ctx.Stdout, "aborted")
			return nil
		}
	}

	if err := st.Wipe(); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Deleted %d record(s)", len(records)))
	return nil
}
