package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/render"
)

// list: stored sessions.
func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := appCtx.Sessions.List()
			if err != nil {
				return err
			}
			fmt.Fprint(out(cmd), render.Summaries(list))
			return nil
		},
	}
}
