package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
	"quatex/internal/render"
)

// keygen <name>: sample base and secrets for a session.
func keygenCmd() *cobra.Command {
	var (
		modulus int64
		seed    string
	)
	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate base and invertible secrets for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if modulus == 0 {
				modulus = appCtx.Settings.Simulation.Modulus
			}
			sess, ev, err := appCtx.Sessions.Generate(passphrase, domain.SessionName(args[0]), modulus, seed)
			if err != nil {
				return err
			}
			w := out(cmd)
			fmt.Fprint(w, render.Event(ev))
			fmt.Fprintf(w, "seed %s\n", sess.Seed)
			return nil
		},
	}
	cmd.Flags().Int64VarP(&modulus, "modulus", "m", 0, "ring modulus (default from config)")
	cmd.Flags().StringVar(&seed, "seed", "", "hex sampler seed (default random)")
	return cmd
}
