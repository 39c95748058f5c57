package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/render"
	"quatex/internal/services/session"
)

// run: a full throwaway session in memory.
func runCmd() *cobra.Command {
	var (
		modulus int64
		seed    string
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run all three phases of a throwaway session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if modulus == 0 {
				modulus = appCtx.Settings.Simulation.Modulus
			}
			res, err := session.Simulate(modulus, seed, appCtx.Settings.Simulation.MaxAttempts)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, res)
			}

			st := res.State
			w := out(cmd)
			fmt.Fprintln(w, render.Header(fmt.Sprintf("session mod %d (seed %s)", modulus, res.Seed)))
			fmt.Fprintln(w, render.Value("base", st.Base))
			fmt.Fprintln(w, render.Value("secret_a", st.SecretA))
			fmt.Fprintln(w, render.Value("secret_b", st.SecretB))
			fmt.Fprintln(w, render.Value("public_a", *st.PublicA))
			fmt.Fprintln(w, render.Value("public_b", *st.PublicB))
			fmt.Fprintln(w, render.Value("shared_a", res.Outcome.SharedA))
			fmt.Fprintln(w, render.Value("shared_b", res.Outcome.SharedB))
			fmt.Fprintln(w, render.Value("AB-BA", res.Commutator))
			if res.Commutator.IsZero() {
				fmt.Fprintln(w, "  the secrets commute")
			}
			fmt.Fprintln(w, "  "+render.Verdict(res.Outcome.Agree))
			return nil
		},
	}
	cmd.Flags().Int64VarP(&modulus, "modulus", "m", 0, "ring modulus (default from config)")
	cmd.Flags().StringVar(&seed, "seed", "", "hex sampler seed (default random)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
