package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/render"
)

// survey: many sessions on the worker pool.
func surveyCmd() *cobra.Command {
	var (
		modulus int64
		trials  int
		seed    string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Run many independent sessions and report how often they agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if modulus == 0 {
				modulus = appCtx.Settings.Simulation.Modulus
			}
			report, err := appCtx.Survey.Survey(cmd.Context(), modulus, trials, seed)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, report)
			}
			w := out(cmd)
			fmt.Fprintln(w, render.Header(fmt.Sprintf("survey mod %d (seed %s)", report.Modulus, report.Seed)))
			fmt.Fprintf(w, "  trials         %d\n", report.Trials)
			fmt.Fprintf(w, "  agreements     %d\n", report.Agreements)
			fmt.Fprintf(w, "  disagreements  %d\n", report.Disagreements)
			fmt.Fprintf(w, "  failures       %d\n", report.Failures)
			fmt.Fprintf(w, "  agreement rate %.2f%%\n", 100*report.AgreementRate())
			return nil
		},
	}
	cmd.Flags().Int64VarP(&modulus, "modulus", "m", 0, "ring modulus (default from config)")
	cmd.Flags().IntVarP(&trials, "trials", "n", 1000, "number of sessions")
	cmd.Flags().StringVar(&seed, "seed", "", "hex survey seed (default random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}
