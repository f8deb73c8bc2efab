package backfill_test

import (
	"context"
	"errors"
	"sync"

	"github.com/evmchain/indexer/internal/backfill"
	"github.com/evmchain/indexer/internal/backfill/fake"
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/validator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Driver", func() {
	var (
		driver        *backfill.Driver
		fakeTransport *fake.Transport
		fakeStore     *fake.Store
		fakeValidator *fake.Validator
		ctx           context.Context
		runErr        error
	)

	BeforeEach(func() {
		fakeTransport = new(fake.Transport)
		fakeStore = new(fake.Store)
		fakeValidator = new(fake.Validator)
		ctx = context.Background()

		fakeStore.ReadCheckpointReturns(model.Checkpoint{}, errors.New("no checkpoint"))

		fakeValidator.ValidateStub = func(raw model.RawTransaction) validator.Outcome {
			return validator.Outcome{OK: true, Record: model.Transaction{
				BlockNumber:     raw.BlockNumber,
				TransactionHash: raw.TransactionHash,
			}}
		}

		driver = backfill.NewDriver(zap.NewNop().Sugar(), fakeTransport, fakeStore, fakeValidator)
	})

	When("every block in range fetches cleanly", func() {
		var mu sync.Mutex
		seen := map[int64]bool{}

		BeforeEach(func() {
			mu = sync.Mutex{}
			seen = map[int64]bool{}

			fakeTransport.FetchBlockWithTransactionsStub = func(_ context.Context, n int64) (rpc.Block, error) {
				mu.Lock()
				seen[n] = true
				mu.Unlock()
				return rpc.Block{
					Header: rpc.Header{Number: n},
					Transactions: []model.RawTransaction{
						{BlockNumber: n, TransactionHash: "0xtx"},
					},
				}, nil
			}
		})

		JustBeforeEach(func() {
			runErr = driver.Run(ctx, 10, 16, 3)
		})

		It("fetches every block across both ranges and commits one bulk-ingest per range", func() {
			Expect(runErr).NotTo(HaveOccurred())
			for n := int64(10); n < 16; n++ {
				Expect(seen[n]).To(BeTrue(), "expected block %d to be fetched", n)
			}
			Expect(fakeStore.BulkIngestCallCount()).To(Equal(2))

			_, firstBatch := fakeStore.BulkIngestArgsForCall(0)
			Expect(firstBatch).To(HaveLen(3))

			_, secondBatch := fakeStore.BulkIngestArgsForCall(1)
			Expect(secondBatch).To(HaveLen(3))
		})
	})

	When("a checkpoint already covers part of the requested range", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 12}, nil)
			fakeTransport.FetchBlockWithTransactionsReturns(rpc.Block{}, nil)
		})

		JustBeforeEach(func() {
			runErr = driver.Run(ctx, 5, 16, 4)
		})

		It("clamps the effective start to checkpoint+1", func() {
			Expect(runErr).NotTo(HaveOccurred())
			var lowest int64 = 1 << 62
			for i := 0; i < fakeTransport.FetchBlockWithTransactionsCallCount(); i++ {
				_, n := fakeTransport.FetchBlockWithTransactionsArgsForCall(i)
				if n < lowest {
					lowest = n
				}
			}
			Expect(lowest).To(Equal(int64(13)))
		})
	})

	When("a block's fetch exhausts retries and fails", func() {
		BeforeEach(func() {
			fakeTransport.FetchBlockWithTransactionsStub = func(_ context.Context, n int64) (rpc.Block, error) {
				if n == 12 {
					return rpc.Block{}, errors.New("rpc exhausted")
				}
				return rpc.Block{Header: rpc.Header{Number: n}}, nil
			}
		})

		JustBeforeEach(func() {
			runErr = driver.Run(ctx, 10, 14, 4)
		})

		It("aborts the run and never commits the range", func() {
			Expect(runErr).To(HaveOccurred())
			Expect(fakeStore.BulkIngestCallCount()).To(Equal(0))
		})
	})

	When("batch_blocks is not positive", func() {
		JustBeforeEach(func() {
			runErr = driver.Run(ctx, 10, 14, 0)
		})

		It("rejects the run up front", func() {
			Expect(runErr).To(HaveOccurred())
			Expect(fakeTransport.FetchBlockWithTransactionsCallCount()).To(Equal(0))
		})
	})
})
