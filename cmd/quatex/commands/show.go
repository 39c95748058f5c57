package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quatex/internal/crypto"
	"quatex/internal/domain"
	"quatex/internal/protocol/conjugation"
	"quatex/internal/render"
)

// show <name>: print a session and its history.
func showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a session and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := appCtx.Sessions.Get(passphrase, domain.SessionName(args[0]))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, sess)
			}
			w := out(cmd)
			fmt.Fprintf(w, "%s  modulus %d  %s  seed %s\n",
				render.Header(sess.Name.String()), sess.State.Modulus, sess.State.Phase(), sess.Seed)
			for _, ev := range sess.History {
				fmt.Fprint(w, render.Event(ev))
			}
			for _, p := range []conjugation.Party{conjugation.PartyA, conjugation.PartyB} {
				if q, ok := sess.State.Public(p); ok {
					fmt.Fprintf(w, "public %s fingerprint %s\n", p, crypto.FingerprintQuaternion(q))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the session as JSON")
	return cmd
}
