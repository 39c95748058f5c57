package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/render"
)

// eavesdrop <name>: solve the conjugacy search for both public values.
func eavesdropCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "eavesdrop <name>",
		Short: "Recover working conjugators from the public values (toy moduli)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			name := domain.SessionName(args[0])
			spy, err := appCtx.Sessions.Eavesdrop(ctx, passphrase, name)
			if err != nil {
				return err
			}
			sess, err := appCtx.Sessions.Get(passphrase, name)
			if err != nil {
				return err
			}

			w := out(cmd)
			fmt.Fprintln(w, render.Header("observer"))
			fmt.Fprintln(w, render.Value("S'_a", spy.ConjugatorA))
			fmt.Fprintln(w, render.Value("S'_b", spy.ConjugatorB))
			fmt.Fprintln(w, render.Value("forged_a", spy.ForgedA))
			fmt.Fprintln(w, render.Value("forged_b", spy.ForgedB))
			if sess.State.Phase() < conjugation.PhaseSharedValuesDerived {
				fmt.Fprintln(w, "  derive the session to compare the forged values")
				return nil
			}
			fmt.Fprintf(w, "  forged_a matches shared_a: %t\n", spy.MatchesA)
			fmt.Fprintf(w, "  forged_b matches shared_b: %t\n", spy.MatchesB)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up the search after this long")
	return cmd
}
