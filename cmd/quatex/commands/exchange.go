package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/render"
)

// exchange <name>: publish both conjugated bases.
func exchangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exchange <name>",
		Short: "Compute and publish A·G·A⁻¹ and B·G·B⁻¹",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ev, err := appCtx.Sessions.Exchange(passphrase, domain.SessionName(args[0]))
			if errors.Is(err, conjugation.ErrNonInvertibleSecret) {
				return fmt.Errorf("%w (run keygen %s again)", err, args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), render.Event(ev))
			return nil
		},
	}
}
