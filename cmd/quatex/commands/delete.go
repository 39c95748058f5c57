package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
)

// delete <name>: remove a session.
func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a session and its assistant transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Sessions.Delete(domain.SessionName(args[0])); err != nil {
				return err
			}
			fmt.Fprintln(out(cmd), "deleted", args[0])
			return nil
		},
	}
}
