package rpc_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/rpc/fake"

	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func header(n int64) *types.Header {
	return &types.Header{Number: big.NewInt(n), Time: uint64(n)}
}

var _ = Describe("Transport", func() {
	var (
		ctx         context.Context
		primary     *fake.EthClient
		secondary   *fake.EthClient
		transport   *rpc.Transport
		testErr     error
		logger      *zap.SugaredLogger
		fastCfg     rpc.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		primary = new(fake.EthClient)
		secondary = new(fake.EthClient)
		testErr = errors.New("dial tcp: connection refused")
		logger = zap.NewNop().Sugar()
		fastCfg = rpc.Config{
			MaxRetries:          2,
			BaseBackoff:         time.Millisecond,
			HealthCheckInterval: time.Hour,
			StaleThreshold:      3,
		}
	})

	Describe("routing around a stale endpoint", func() {
		BeforeEach(func() {
			primary.BlockNumberReturns(100, nil)
			secondary.BlockNumberReturns(90, nil)

			transport = rpc.New(logger, fastCfg, []rpc.Endpoint{
				{URL: "primary", Client: primary},
				{URL: "secondary", Client: secondary},
			})
		})

		When("the secondary endpoint lags beyond the stale threshold", func() {
			BeforeEach(func() {
				secondary.BlockNumberReturns(90, nil)
				primary.HeaderByNumberReturns(header(100), nil)
				transport.StartHealthMonitor(ctx)
			})

			AfterEach(func() { transport.Stop() })

			It("routes foreground calls to the healthy endpoint only", func() {
				h, err := transport.CurrentHead(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(h.Number).To(Equal(int64(100)))
				Expect(primary.HeaderByNumberCallCount()).To(Equal(1))
				Expect(secondary.HeaderByNumberCallCount()).To(Equal(0))
			})
		})

		When("both endpoints report heights within the stale threshold", func() {
			BeforeEach(func() {
				primary.BlockNumberReturns(100, nil)
				secondary.BlockNumberReturns(100, nil)
				primary.HeaderByNumberReturns(header(100), nil)
				secondary.HeaderByNumberReturns(header(100), nil)
				transport.StartHealthMonitor(ctx)
			})

			AfterEach(func() { transport.Stop() })

			It("both endpoints are eligible once within threshold", func() {
				_, err := transport.CurrentHead(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(primary.HeaderByNumberCallCount() + secondary.HeaderByNumberCallCount()).To(Equal(1))
			})
		})
	})

	Describe("fallback when every endpoint is unhealthy", func() {
		BeforeEach(func() {
			primary.BlockNumberReturns(0, testErr)
			secondary.BlockNumberReturns(0, testErr)
			primary.HeaderByNumberReturns(header(1), nil)

			transport = rpc.New(logger, fastCfg, []rpc.Endpoint{
				{URL: "primary", Client: primary},
				{URL: "secondary", Client: secondary},
			})
			transport.StartHealthMonitor(ctx)
		})

		AfterEach(func() { transport.Stop() })

		It("still routes to the first configured endpoint as a safety valve", func() {
			h, err := transport.CurrentHead(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(h.Number).To(Equal(int64(1)))
		})
	})

	Describe("retry on transient failure", func() {
		BeforeEach(func() {
			primary.BlockNumberReturns(10, nil)
			transport = rpc.New(logger, fastCfg, []rpc.Endpoint{
				{URL: "primary", Client: primary},
			})
			transport.StartHealthMonitor(ctx)
		})

		AfterEach(func() { transport.Stop() })

		When("the endpoint fails twice and then succeeds", func() {
			BeforeEach(func() {
				primary.HeaderByNumberReturnsOnCall(0, nil, testErr)
				primary.HeaderByNumberReturnsOnCall(1, nil, testErr)
				primary.HeaderByNumberReturnsOnCall(2, header(10), nil)
			})

			It("succeeds after retrying with backoff", func() {
				h, err := transport.FetchBlockHeader(ctx, 10)
				Expect(err).NotTo(HaveOccurred())
				Expect(h.Number).To(Equal(int64(10)))
				Expect(primary.HeaderByNumberCallCount()).To(Equal(3))
			})
		})

		When("the endpoint fails on every attempt", func() {
			BeforeEach(func() {
				primary.HeaderByNumberReturns(nil, testErr)
			})

			It("gives up after the configured number of retries and tags the error as transient", func() {
				_, err := transport.FetchBlockHeader(ctx, 10)
				Expect(err).To(HaveOccurred())
				Expect(errors.Is(err, errkind.ErrTransientRPC)).To(BeTrue())
			})
		})
	})

	Describe("AllChainIDs", func() {
		BeforeEach(func() {
			primary.NetworkIDReturns(big.NewInt(1), nil)
			secondary.NetworkIDReturns(big.NewInt(5), nil)
			transport = rpc.New(logger, fastCfg, []rpc.Endpoint{
				{URL: "primary", Client: primary},
				{URL: "secondary", Client: secondary},
			})
		})

		It("reports every endpoint's chain id independent of health routing", func() {
			ids, err := transport.AllChainIDs(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(Equal(map[string]int64{"primary": 1, "secondary": 5}))
		})
	})
})
