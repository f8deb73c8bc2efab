// Package rpc implements the reliable RPC transport: a multi-endpoint
// EVM client with a background health monitor, stale-filter routing, and
// per-call retry with exponential backoff. Built on go-ethereum's
// ethclient.Client, the teacher's own node-access library, generalized
// from a single endpoint to an ordered, health-routed list.
package rpc

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Config tunes retry and health-check behavior. Zero-value fields are
// replaced with the spec's defaults by New.
type Config struct {
	MaxRetries          uint64
	BaseBackoff         time.Duration
	HealthCheckInterval time.Duration
	StaleThreshold      int64
}

func (c Config) withDefaults() Config {
	if c.MaxRetries == 0 {
		c.MaxRetries = 5
	}
	if c.BaseBackoff == 0 {
		c.BaseBackoff = time.Second
	}
	if c.HealthCheckInterval == 0 {
		c.HealthCheckInterval = 10 * time.Second
	}
	if c.StaleThreshold == 0 {
		c.StaleThreshold = 3
	}
	return c
}

// Endpoint pairs a provider URL with the client that talks to it.
// Exported so callers construct the client (ethclient.Dial or a fake)
// and the transport never dials anything itself.
type Endpoint struct {
	URL    string
	Client EthClient
}

type endpointState struct {
	url     string
	client  EthClient
	healthy bool
	height  int64
}

// Transport is a health-routed, retrying client over an ordered list of
// EVM endpoints. The background monitor is the map's sole writer; every
// foreground call only reads it, under a RWMutex, satisfying the
// single-writer/many-reader requirement for the shared health state.
type Transport struct {
	logger *zap.SugaredLogger
	cfg    Config

	mu        sync.RWMutex
	endpoints []*endpointState

	chainID   *big.Int
	chainIDMu sync.Mutex

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New constructs a Transport over the given ordered endpoints. Priority
// order for routing is the order endpoints are passed in.
func New(logger *zap.SugaredLogger, cfg Config, endpoints []Endpoint) *Transport {
	states := make([]*endpointState, len(endpoints))
	for i, ep := range endpoints {
		// Assume healthy until the first monitor tick proves otherwise,
		// so routing has somewhere to go before the first probe lands.
		states[i] = &endpointState{url: ep.URL, client: ep.Client, healthy: true}
	}
	return &Transport{
		logger:    logger,
		cfg:       cfg.withDefaults(),
		endpoints: states,
		stopCh:    make(chan struct{}),
	}
}

// StartHealthMonitor runs one synchronous probe immediately (so the
// first foreground call never routes against an untested endpoint set),
// then launches the periodic monitor goroutine. Call Stop to halt it.
func (t *Transport) StartHealthMonitor(ctx context.Context) {
	t.tick(ctx)

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		ticker := time.NewTicker(t.cfg.HealthCheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.stopCh:
				return
			case <-ticker.C:
				t.tick(ctx)
			}
		}
	}()
}

// Stop halts the health monitor and waits for it to exit.
func (t *Transport) Stop() {
	close(t.stopCh)
	t.wg.Wait()
}

// tick queries every endpoint's current height, computes the observed
// max, and reclassifies each endpoint healthy/unhealthy against the
// stale threshold. Transitions are logged exactly once per change.
func (t *Transport) tick(ctx context.Context) {
	t.mu.RLock()
	snapshot := make([]*endpointState, len(t.endpoints))
	copy(snapshot, t.endpoints)
	t.mu.RUnlock()

	heights := make([]int64, len(snapshot))
	ok := make([]bool, len(snapshot))
	var maxHeight int64 = -1

	for i, ep := range snapshot {
		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		n, err := ep.client.BlockNumber(probeCtx)
		cancel()
		if err != nil {
			ok[i] = false
			continue
		}
		heights[i] = int64(n)
		ok[i] = true
		if heights[i] > maxHeight {
			maxHeight = heights[i]
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, ep := range t.endpoints {
		wasHealthy := ep.healthy
		switch {
		case !ok[i]:
			ep.healthy = false
		case maxHeight-heights[i] > t.cfg.StaleThreshold:
			ep.healthy = false
		default:
			ep.healthy = true
			ep.height = heights[i]
		}

		if wasHealthy != ep.healthy {
			if ep.healthy {
				t.logger.Infow("endpoint became healthy", "url", ep.url, "height", ep.height)
			} else {
				t.logger.Warnw("endpoint became stale", "url", ep.url, "height", ep.height, "max_height", maxHeight)
			}
		}
	}
}

// routeOrder returns endpoints in priority order, healthy ones first
// filtered to just the healthy set. If none are healthy, it falls back
// to the first configured endpoint so the process is never locked out.
func (t *Transport) routeOrder() []*endpointState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	healthy := make([]*endpointState, 0, len(t.endpoints))
	for _, ep := range t.endpoints {
		if ep.healthy {
			healthy = append(healthy, ep)
		}
	}
	if len(healthy) > 0 {
		return healthy
	}
	if len(t.endpoints) > 0 {
		return t.endpoints[:1]
	}
	return nil
}

// withRetry dispatches fn against the first-healthy endpoint, retrying
// with exponential backoff (base 1s, doubling, capped at cfg.MaxRetries)
// on failure. Each attempt re-queries the healthy set, so recovery
// propagates mid-retry instead of only on the next foreground call.
func withRetry[T any](ctx context.Context, t *Transport, desc string, fn func(context.Context, EthClient) (T, error)) (T, error) {
	var zero T
	var result T

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = t.cfg.BaseBackoff
	eb.Multiplier = 2
	bo := backoff.WithContext(backoff.WithMaxRetries(eb, t.cfg.MaxRetries), ctx)

	var lastErr error
	op := func() error {
		eps := t.routeOrder()
		if len(eps) == 0 {
			return fmt.Errorf("no endpoints configured")
		}
		res, err := fn(ctx, eps[0].client)
		if err != nil {
			lastErr = err
			return err
		}
		result = res
		return nil
	}

	if err := backoff.Retry(op, bo); err != nil {
		return zero, fmt.Errorf("%s: %w: %w", desc, lastErr, errkind.ErrTransientRPC)
	}
	return result, nil
}

// FetchBlockHeader fetches the header of block n.
func (t *Transport) FetchBlockHeader(ctx context.Context, n int64) (Header, error) {
	return withRetry(ctx, t, "fetch block header", func(ctx context.Context, c EthClient) (Header, error) {
		h, err := c.HeaderByNumber(ctx, big.NewInt(n))
		if err != nil {
			return Header{}, err
		}
		return headerFromTypes(h), nil
	})
}

// FetchBlockWithTransactions fetches block n and its full transaction
// list, recovering each transaction's sender address. is_internal_call
// is always false here: trace-level internal-call decoding is out of
// scope (see Non-goals).
func (t *Transport) FetchBlockWithTransactions(ctx context.Context, n int64) (Block, error) {
	return withRetry(ctx, t, "fetch block with transactions", func(ctx context.Context, c EthClient) (Block, error) {
		b, err := c.BlockByNumber(ctx, big.NewInt(n))
		if err != nil {
			return Block{}, err
		}

		chainID, err := t.cachedChainID(ctx, c)
		if err != nil {
			return Block{}, err
		}
		signer := types.LatestSignerForChainID(chainID)

		txs := b.Transactions()
		raw := make([]model.RawTransaction, len(txs))
		for i, tx := range txs {
			from, err := types.Sender(signer, tx)
			if err != nil {
				return Block{}, fmt.Errorf("recover sender for tx %s: %w", tx.Hash().Hex(), err)
			}

			// Address.Hex() is EIP-55 mixed case; the validator accepts
			// lowercase hex only.
			var to *string
			if tx.To() != nil {
				hex := strings.ToLower(tx.To().Hex())
				to = &hex
			}

			raw[i] = model.RawTransaction{
				BlockNumber:      b.Number().Int64(),
				BlockHash:        b.Hash().Hex(),
				TransactionHash:  tx.Hash().Hex(),
				TransactionIndex: int64(i),
				FromAddress:      strings.ToLower(from.Hex()),
				ToAddress:        to,
				Amount:           tx.Value().String(),
				IsInternalCall:   false,
			}
		}

		return Block{Header: headerFromTypes(b.Header()), Transactions: raw}, nil
	})
}

// CurrentHead returns the header of the chain's latest block.
func (t *Transport) CurrentHead(ctx context.Context) (Header, error) {
	return withRetry(ctx, t, "current head", func(ctx context.Context, c EthClient) (Header, error) {
		h, err := c.HeaderByNumber(ctx, nil)
		if err != nil {
			return Header{}, err
		}
		return headerFromTypes(h), nil
	})
}

// ChainID returns the network's chain ID, used both by sender recovery
// and by the daemon's startup chain-ID-agreement guard.
func (t *Transport) ChainID(ctx context.Context) (int64, error) {
	id, err := withRetry(ctx, t, "chain id", func(ctx context.Context, c EthClient) (*big.Int, error) {
		return c.NetworkID(ctx)
	})
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}

// AllChainIDs queries every configured endpoint's chain ID directly,
// bypassing health routing, so the startup guard can compare them all
// even before the monitor has run a single tick.
func (t *Transport) AllChainIDs(ctx context.Context) (map[string]int64, error) {
	t.mu.RLock()
	snapshot := make([]*endpointState, len(t.endpoints))
	copy(snapshot, t.endpoints)
	t.mu.RUnlock()

	ids := make(map[string]int64, len(snapshot))
	for _, ep := range snapshot {
		id, err := ep.client.NetworkID(ctx)
		if err != nil {
			return nil, fmt.Errorf("chain id from %s: %w", ep.url, err)
		}
		ids[ep.url] = id.Int64()
	}
	return ids, nil
}

func (t *Transport) cachedChainID(ctx context.Context, c EthClient) (*big.Int, error) {
	t.chainIDMu.Lock()
	defer t.chainIDMu.Unlock()
	if t.chainID != nil {
		return t.chainID, nil
	}
	id, err := c.NetworkID(ctx)
	if err != nil {
		return nil, err
	}
	t.chainID = id
	return id, nil
}

func headerFromTypes(h *types.Header) Header {
	return Header{
		Number:     h.Number.Int64(),
		Hash:       h.Hash().Hex(),
		ParentHash: h.ParentHash.Hex(),
		Timestamp:  int64(h.Time),
	}
}
