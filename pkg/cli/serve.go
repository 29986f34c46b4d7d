package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/briareos/pkg/cli/config"
	httpctrl "github.com/secmon-lab/briareos/pkg/controller/http"
	"github.com/secmon-lab/briareos/pkg/service/detect"
	"github.com/secmon-lab/briareos/pkg/service/worker"
	"github.com/secmon-lab/briareos/pkg/usecase"
	"github.com/secmon-lab/briareos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var sweepInterval time.Duration
	var autoSweepEvery int
	var storeCfg config.SessionStore
	var taxonomyCfg config.Taxonomy

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BRIAREOS_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "sweep-interval",
			Usage:       "Interval between background session sweeps (0 disables the worker)",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("BRIAREOS_SWEEP_INTERVAL"),
			Destination: &sweepInterval,
		},
		&cli.IntFlag{
			Name:        "auto-sweep-every",
			Usage:       "Classify requests between opportunistic sweeps (0 disables)",
			Value:       httpctrl.DefaultAutoSweepEvery,
			Sources:     cli.EnvVars("BRIAREOS_AUTO_SWEEP_EVERY"),
			Destination: &autoSweepEvery,
		},
	}

	flags = append(flags, storeCfg.Flags()...)
	flags = append(flags, taxonomyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			tax, err := taxonomyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to build taxonomy")
			}

			store := storeCfg.Configure()
			logging.Default().Info("session store configured", "store", storeCfg)

			uc := usecase.New(store, detect.New(tax),
				usecase.WithMaxIdle(storeCfg.TTL()),
			)

			var sweepWorker *worker.SweepWorker
			if sweepInterval > 0 {
				sweepWorker = worker.NewSweepWorker(store, sweepInterval, storeCfg.TTL())
				if err := sweepWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start sweep worker")
				}
			}

			httpHandler := httpctrl.New(uc,
				httpctrl.WithAutoSweepEvery(autoSweepEvery),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				if sweepWorker != nil {
					sweepWorker.Stop()
				}

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
