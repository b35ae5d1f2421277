package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/you/skyfinder/internal/config"
	"github.com/you/skyfinder/internal/httpx"
	"github.com/you/skyfinder/internal/log"
)

const shutdownTimeout = 10 * time.Second

func newStubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stub",
		Short: "Serve a local search endpoint backed by sample offers",
		Long: `Serve POST /flights/search from a fixture so the client can be tried
without a real backend. Offers are filtered by the request's from, to and
date; an offer that omits one of them matches any value.`,
		Args: cobra.NoArgs,
		RunE: runStub,
	}

	f := cmd.Flags()
	f.String("stub-listen", ":8080", "listen address")
	f.Duration("stub-delay", 0, "artificial delay before each response")
	f.String("stub-shape", config.ShapeObject, `response shape: "object" ({"flights": [...]}) or "list"`)
	f.String("stub-fixture", "", "JSON file with offers to serve instead of the built-in ones")

	return cmd
}

func runStub(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd, "stderr")
	if err != nil {
		return err
	}

	e, err := httpx.NewServer(cfg.Stub)
	if err != nil {
		return err
	}

	logger := log.Logger.Named("stub")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("stub endpoint listening",
			zap.String("addr", cfg.Stub.Listen),
			zap.String("path", httpx.SearchPath),
			zap.String("shape", cfg.Stub.Shape),
			zap.Duration("delay", cfg.Stub.Delay))
		if err := e.Start(cfg.Stub.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "serve")
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Wrap(e.Shutdown(sctx), "shutdown")
	})

	return g.Wait()
}
