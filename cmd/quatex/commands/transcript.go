package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/domain"
	"quatex/internal/render"
)

// transcript <name>: the recorded assistant conversation.
func transcriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transcript <name>",
		Short: "Print the assistant conversation of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, err := appCtx.Tutor.Transcript(domain.SessionName(args[0]))
			if err != nil {
				return err
			}
			w := out(cmd)
			for _, t := range tr.Turns {
				fmt.Fprintf(w, "%s %s\n", render.Header(string(t.Role)+":"), t.Text)
			}
			return nil
		},
	}
}
