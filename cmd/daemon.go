package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/evmchain/indexer/internal/config"
	"github.com/evmchain/indexer/internal/ingest"
	"github.com/evmchain/indexer/internal/metrics"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/store"
	"github.com/evmchain/indexer/internal/validator"
	"github.com/evmchain/indexer/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

// Start wires the indexing daemon and blocks until SIGINT/SIGTERM.
func Start() error {
	logger := log.NewZapLogger("evmchain-indexer", zapcore.InfoLevel)

	cfg, warning, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		return err
	}
	if warning != "" {
		logger.Warnw(warning)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gormStore, err := store.NewGormStore(cfg.DSN())
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	if err := gormStore.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables", "error", err)
		return err
	}

	bulkLoader, err := store.NewBulkLoader(ctx, cfg.DSN())
	if err != nil {
		logger.Errorw("failed to connect bulk loader", "error", err)
		return err
	}
	defer bulkLoader.Close()

	combinedStore := store.NewCombinedStore(gormStore, bulkLoader)

	endpoints, err := dialEndpoints(cfg.RPCURLs)
	if err != nil {
		logger.Errorw("failed to dial rpc endpoints", "error", err)
		return err
	}

	transport := rpc.New(logger, rpc.Config{
		MaxRetries:          cfg.MaxRetries,
		HealthCheckInterval: cfg.HealthCheckInterval,
		StaleThreshold:      cfg.StaleThreshold,
	}, endpoints)
	transport.StartHealthMonitor(ctx)
	defer transport.Stop()

	if err := requireAgreeingChainIDs(ctx, transport); err != nil {
		logger.Errorw("refusing to start with disagreeing chain ids", "error", err)
		return err
	}

	reg := prometheus.NewRegistry()
	metr := metrics.New(reg)

	loop := ingest.NewLoop(logger, transport, combinedStore, validator.New(), metr, ingest.Config{
		PollingPeriod: cfg.PollingPeriod,
		ErrorBackoff:  cfg.ErrorBackoff,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: ":9090", Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorw("metrics server stopped", "error", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("metrics server shutdown", "error", err)
	}

	logger.Infow("indexer stopped")
	return runErr
}

func dialEndpoints(urls []string) ([]rpc.Endpoint, error) {
	endpoints := make([]rpc.Endpoint, 0, len(urls))
	for _, url := range urls {
		client, err := ethclient.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("dial %s: %w", url, err)
		}
		endpoints = append(endpoints, rpc.Endpoint{URL: url, Client: client})
	}
	return endpoints, nil
}

// requireAgreeingChainIDs refuses to start against a misconfigured pool
// of endpoints pointed at different networks.
func requireAgreeingChainIDs(ctx context.Context, transport *rpc.Transport) error {
	ids, err := transport.AllChainIDs(ctx)
	if err != nil {
		return fmt.Errorf("query chain ids: %w", err)
	}

	var want int64
	first := true
	for url, id := range ids {
		if first {
			want = id
			first = false
			continue
		}
		if id != want {
			return fmt.Errorf("chain id mismatch: endpoint %s reports %d, expected %d", url, id, want)
		}
	}
	return nil
}
