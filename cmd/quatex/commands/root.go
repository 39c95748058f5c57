package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"quatex/internal/app"
)

var (
	home       string
	configPath string
	passphrase string
	logLevel   string
	appCtx     *app.Wire
)

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "quatex",
		Short:         "Quaternion conjugation key-exchange simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				home = app.DefaultHome()
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			settings, err := app.LoadSettings(home, configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				settings.Logging.Level = logLevel
				if err := settings.FixupAndValidate(); err != nil {
					return err
				}
			}

			// A previous command that failed never reached PersistentPostRunE.
			if appCtx != nil {
				_ = appCtx.Close()
			}
			appCtx, err = app.NewWire(app.Config{Home: home, Settings: settings}, nil)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			appCtx = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default $QUATEX_HOME or ~/.quatex)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/quatex.toml)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase sealing session files")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "ERROR, WARNING, NOTICE, INFO or DEBUG")

	root.AddCommand(
		keygenCmd(),
		exchangeCmd(),
		deriveCmd(),
		showCmd(),
		listCmd(),
		deleteCmd(),
		runCmd(),
		eavesdropCmd(),
		surveyCmd(),
		arithCmd(),
		askCmd(),
		transcriptCmd(),
	)
	return root
}

// Execute runs the CLI through fang.
func Execute() error {
	root := NewRoot()
	return fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(versioninfo.Short()),
		fang.WithErrorHandler(errorHandler(root)),
	)
}

// errorHandler prints the styled error followed by usage help for argument
// errors, or a hint to run --help otherwise.
func errorHandler(root *cobra.Command) fang.ErrorHandler {
	return func(w io.Writer, styles fang.Styles, err error) {
		_, _ = fmt.Fprintln(w, styles.ErrorHeader.String())
		_, _ = fmt.Fprintln(w, styles.ErrorText.Render(err.Error()+"."))
		_, _ = fmt.Fprintln(w)

		if isUsageError(err) {
			root.SetOut(colorprofile.NewWriter(w, os.Environ()))
			_ = root.Usage()
			return
		}
		_, _ = fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		))
		_, _ = fmt.Fprintln(w)
	}
}

func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts ",
		"requires at least",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// out wraps the command's stdout so styling degrades to plain text when the
// destination is not a terminal.
func out(cmd *cobra.Command) io.Writer {
	return colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
}
