package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/wage-cli/internal/pipeline"
	"github.com/sells-group/wage-cli/internal/wage"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Show how target metros map to OFLC area codes",
	Long:  "Loads the geography table and prints the resolved area code and official name for each target metro, then the metros that could not be resolved. The wage file is not read.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts, cleanup, err := pipelineOptions(cfg.Data)
		if err != nil {
			return err
		}
		defer cleanup()

		mapping, res, err := pipeline.New(opts, nil).Resolve(wage.DefaultTargets())
		if err != nil {
			return eris.Wrap(err, "resolve")
		}

		out := cmd.OutOrStdout()
		for _, metro := range res.Resolved {
			code := res.Codes[metro]
			name, _ := mapping.Name(code)
			fmt.Fprintf(out, "%-50s %10s  %s\n", metro, code, name)
		}
		if len(res.Unresolved) > 0 {
			fmt.Fprintf(out, "\nUnresolved (%d):\n", len(res.Unresolved))
			for _, metro := range res.Unresolved {
				fmt.Fprintf(out, "  %s\n", metro)
			}
		}
		fmt.Fprintf(out, "\nFound %d out of %d metro areas\n", len(res.Resolved), len(res.Resolved)+len(res.Unresolved))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
