package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
	"quatex/internal/render"
)

// derive <name>: derive both shared values and compare.
func deriveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive <name>",
		Short: "Derive the shared values and report whether they agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ev, err := appCtx.Sessions.Derive(passphrase, domain.SessionName(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), render.Event(ev))
			return nil
		},
	}
}
