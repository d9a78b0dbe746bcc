package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/reps"
	"github.com/aretw0/reps/internal/presentation/tui"
	"github.com/aretw0/reps/internal/server"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until SIGINT or SIGTERM.
func Serve(opts Options, stderr io.Writer, logger *slog.Logger) error {
	promReg := prometheus.NewRegistry()
	eng, err := createEngine(opts.Config, logger, promReg)
	if err != nil {
		return err
	}
	props, err := opts.Props(io.Discard)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: opts.Config.Serve.Addr,
		Handler: server.NewHandler(&server.Server{
			Engine:   eng,
			Props:    props,
			Logger:   logger,
			Gatherer: promReg,
		}),
	}

	profile := termenv.Ascii
	if colorEnabled(opts.Config.Color, stderr) {
		profile = termenv.EnvColorProfile()
	}
	tui.PrintBanner(stderr, profile, reps.Version)

	serverErrors := make(chan error, 1)
	go func() {
		fmt.Fprintf(stderr, "Serving reps on %s\n", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			return srv.Close()
		}
		return nil
	}
}
