package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/wage-cli/internal/pipeline"
	"github.com/sells-group/wage-cli/internal/report"
	"github.com/sells-group/wage-cli/internal/wage"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write JSON exports for the web dashboard",
	Long: `Writes areas.json (every geography area, sorted by name) and
wages/<soc>.json (annualized rows and L2 summary for each target occupation)
under --dir.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		dir, _ := cmd.Flags().GetString("dir")

		opts, cleanup, err := pipelineOptions(cfg.Data)
		if err != nil {
			return err
		}
		defer cleanup()

		result, err := pipeline.New(opts, &report.JSON{Dir: dir}).Run(ctx, wage.DefaultTargets())
		if err != nil {
			return eris.Wrap(err, "export")
		}

		areasPath, err := report.WriteAreasJSON(dir, result.Mapping.Areas())
		if err != nil {
			return eris.Wrap(err, "export")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Written %d areas to %s\n", result.Mapping.Len(), areasPath)
		for _, rep := range result.Reports {
			fmt.Fprintf(out, "Written %d %s rows to %s\n", len(rep.Rows), rep.Occupation.Name, rep.Path)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("dir", "public/data", "output directory for JSON exports")
	rootCmd.AddCommand(exportCmd)
}
