package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alerts_review/internal/handlers"
	"alerts_review/internal/server"

	_ "alerts_review/docs"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.Close()

	apiHandler := handlers.NewHandler(a.services, a.log,
		handlers.WithCache(a.cfg.Cache.TTL),
		handlers.WithRateLimit(a.cfg.RateLimit.PerSecond, a.cfg.RateLimit.Burst),
	)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.Simulator.Enabled {
		a.log.Infow("simulator_started", "tick", a.cfg.Simulator.Tick, "step", a.cfg.Simulator.Step)
		go a.services.Simulator.Run(ctx, a.cfg.Simulator.Tick)
	}

	srv := server.New(a.cfg.Port, apiHandler.InitRoutes())
	errc := make(chan error, 1)
	go func() {
		a.log.Infow("http_server_started", "addr", srv.Addr())
		errc <- srv.Run()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errc:
		if err != nil {
			a.log.Errorw("http_server_failed", "err", err)
		}
		return err
	case sig := <-quit:
		a.log.Infow("shutting_down", "signal", sig.String())
	}

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.log.Errorw("server_forced_shutdown", "err", err)
		return err
	}
	return nil
}
