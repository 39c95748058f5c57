package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"quatex/internal/config"
	"quatex/internal/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var (
		configPath string
		address    string
	)
	cmd := &cobra.Command{
		Use:          "quatexd",
		Short:        "Serve quaternion exchange simulations over HTTP",
		Version:      versioninfo.Short(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if address != "" {
				settings.Server.Address = address
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, settings)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "quatexd.toml", "path to the TOML config file")
	cmd.Flags().StringVarP(&address, "address", "a", "", "listen address (overrides config)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, settings *config.Config) error {
	backend, err := log.New(settings.Logging.File, settings.Logging.Level, settings.Logging.Disable)
	if err != nil {
		return err
	}
	defer backend.Close()
	logger := backend.GetLogger("quatexd")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:              settings.Server.Address,
		Handler:           newServer(settings, backend.GetLogger("http"), reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Noticef("listening on %s (metrics at %s)", settings.Server.Address, settings.Server.MetricsPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Notice("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
