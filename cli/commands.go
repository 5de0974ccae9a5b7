package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Parse        ParseCmd        `cmd:"" help:"Parse raw statement text into the canonical CSV format."`
	Import       ImportCmd       `cmd:"" help:"Import a CSV or XLSX transaction file into the record store."`
	Insights     InsightsCmd     `cmd:"" help:"Compute and render insights over the record store."`
	Recategorize RecategorizeCmd `cmd:"" help:"Change the category of a single stored transaction."`
	Watch        WatchCmd        `cmd:"" help:"Re-render insights whenever the record store or goal file changes."`
	Wipe         WipeCmd         `cmd:"" help:"Delete every record in the store."`
}
