package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sattva/internal/api"
	"sattva/internal/api/handler/v1handler"
	"sattva/internal/auth"
	"sattva/internal/config"
	"sattva/internal/marketplace"
	"sattva/internal/traceability"
	"sattva/internal/worker"
	"sattva/pkg/ledger"
	ledgerstub "sattva/pkg/ledger/stub"
	"sattva/pkg/logger"
	"sattva/pkg/metrics"
	"sattva/pkg/quality"
	"sattva/pkg/quality/remote"
	qualitystub "sattva/pkg/quality/stub"
	"sattva/pkg/storage/postgres"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newAnalyzer returns the AI quality provider selected in the config.
func newAnalyzer(cfg *config.Config) quality.Analyzer {
	if cfg.Quality.Provider == config.QualityProviderRemote {
		return remote.New(&http.Client{Timeout: cfg.Quality.Timeout}, cfg.Quality.Endpoint, cfg.Quality.APIKey)
	}

	return qualitystub.New(qualitystub.Options{
		VerifyDelay:    qualitystub.Delay{Base: cfg.Stubs.AIVerifyDelay, Jitter: cfg.Stubs.AIVerifyJitter},
		ShelfLifeDelay: qualitystub.Delay{Base: cfg.Stubs.AIShelfLifeDelay},
	})
}

func newLedger(cfg *config.Config) ledger.Ledger {
	return ledgerstub.New(ledgerstub.Options{
		WriteDelay:   ledgerstub.Delay{Base: cfg.Stubs.LedgerWriteDelay, Jitter: cfg.Stubs.LedgerWriteJitter},
		VerifyDelay:  ledgerstub.Delay{Base: cfg.Stubs.LedgerVerifyDelay, Jitter: cfg.Stubs.LedgerVerifyJitter},
		HistoryDelay: ledgerstub.Delay{Base: cfg.Stubs.LedgerHistoryDelay},
	})
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	anchor *worker.AnchorWorker) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	if !cfg.Worker.Enabled {
		logger.Info(ctx, "workers are disabled, batches will stay queued")

		return nil, func(context.Context) {}
	}

	riverClient, err := worker.Start(ctx, strg.Pool, anchor, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, err := api.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			recorder, err := metrics.New(mp.Meter(metrics.MeterName))
			if err != nil {
				logger.Fatal(ctx, "could not create metrics", zap.Error(err))
			}

			signer, err := auth.NewSigner(cfg.JWT.PrivateKey, cfg.JWT.TTL, cfg.JWT.Issuer)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}

			analyzer := newAnalyzer(cfg)
			chain := newLedger(cfg)

			anchor := worker.NewAnchorWorker(strg, analyzer, chain, recorder, cfg.Worker.LedgerConcurrency)
			riverClient, stopWorker := setupWorker(ctx, cfg, strg, anchor)

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Auth:         auth.New(strg, signer, recorder, auth.NewOptions(cfg)),
					Traceability: traceability.New(strg, recorder, traceability.NewOptions(cfg)),
					Marketplace:  marketplace.New(strg),
					Quality:      analyzer,
					Ledger:       chain,
				},
				Metrics: recorder,
				Health:  strg.Pool.Ping,
				River:   riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
