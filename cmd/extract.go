package main

import (
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/wage-cli/internal/pipeline"
	"github.com/sells-group/wage-cli/internal/report"
	"github.com/sells-group/wage-cli/internal/wage"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print and save annualized wage tables",
	Long: `Resolves the target metros, extracts wage levels for each target occupation,
prints one table per occupation to stdout and writes <Occupation>_wages.csv to
the output directory. Occupations without survey rows are skipped with a warning.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runExtract(cmd)
	},
}

func runExtract(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts, cleanup, err := pipelineOptions(cfg.Data)
	if err != nil {
		return err
	}
	defer cleanup()

	renderer := report.NewConsole(cmd.OutOrStdout(), cfg.Output.Dir)
	if _, err := pipeline.New(opts, renderer).Run(ctx, wage.DefaultTargets()); err != nil {
		return eris.Wrap(err, "extract")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
