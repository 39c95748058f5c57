package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quatex/internal/assistant"
	"quatex/internal/domain"
)

// ask <name> <question...>: ask the assistant about a session.
func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <name> <question...>",
		Short: "Ask the assistant about a session",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := appCtx.Tutor.Ask(cmd.Context(), passphrase, domain.SessionName(args[0]), strings.Join(args[1:], " "))
			if err != nil && !errors.Is(err, assistant.ErrUnavailable) {
				return err
			}
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "assistant unavailable, showing built-in answer")
			}
			fmt.Fprintln(out(cmd), answer)
			return nil
		},
	}
}
