package ingest_test

import (
	"context"
	"errors"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/ingest"
	"github.com/evmchain/indexer/internal/ingest/fake"
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rpc"
	"github.com/evmchain/indexer/internal/validator"

	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Loop", func() {
	var (
		loop          *ingest.Loop
		fakeTransport *fake.Transport
		fakeStore     *fake.Store
		fakeValidator *fake.Validator
		fakeMetrics   *fake.Metrics
		ctx           context.Context
		state         ingest.State
		stepErr       error
	)

	BeforeEach(func() {
		fakeTransport = new(fake.Transport)
		fakeStore = new(fake.Store)
		fakeValidator = new(fake.Validator)
		fakeMetrics = new(fake.Metrics)
		ctx = context.Background()

		fakeValidator.ValidateStub = func(raw model.RawTransaction) validator.Outcome {
			return validator.Outcome{OK: true, Record: model.Transaction{
				BlockNumber:     raw.BlockNumber,
				BlockHash:       raw.BlockHash,
				TransactionHash: raw.TransactionHash,
				FromAddress:     raw.FromAddress,
				Amount:          decimal.Zero,
			}}
		}

		loop = ingest.NewLoop(zap.NewNop().Sugar(), fakeTransport, fakeStore, fakeValidator, fakeMetrics, ingest.Config{})
	})

	JustBeforeEach(func() {
		state, stepErr = loop.Step(ctx)
	})

	When("no checkpoint exists (cold start)", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{}, errkind.ErrNotFound)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 100, Hash: "0xhash100"}, nil)
			fakeTransport.FetchBlockWithTransactionsReturns(rpc.Block{
				Header: rpc.Header{Number: 100, Hash: "0xhash100"},
				Transactions: []model.RawTransaction{
					{BlockNumber: 100, TransactionHash: "0xtx1"},
				},
			}, nil)
		})

		It("bootstraps at the chain head", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(state).To(Equal(ingest.Bootstrapping))
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(1))
			_, records := fakeStore.AppendBatchArgsForCall(0)
			Expect(records).To(HaveLen(1))
		})
	})

	When("the checkpoint already matches the chain head", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 100}, nil)
		})

		It("reports AtHead and does not fetch a new block", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(state).To(Equal(ingest.AtHead))
			Expect(fakeTransport.FetchBlockHeaderCallCount()).To(Equal(0))
		})
	})

	When("the next block's lineage matches the checkpoint", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 101}, nil)
			fakeTransport.FetchBlockHeaderReturns(rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"}, nil)
			fakeTransport.FetchBlockWithTransactionsReturns(rpc.Block{
				Header: rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"},
				Transactions: []model.RawTransaction{
					{BlockNumber: 101, TransactionHash: "0xtx101"},
				},
			}, nil)
		})

		It("commits the block and reports Syncing", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(state).To(Equal(ingest.Syncing))
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(1))
			Expect(fakeStore.RollbackToCallCount()).To(Equal(0))
		})
	})

	When("the next block's lineage mismatches the checkpoint", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 101}, nil)
			fakeTransport.FetchBlockHeaderReturns(rpc.Header{Number: 101, Hash: "0xhash101prime", ParentHash: "0xhashB"}, nil)
		})

		It("rolls back to the checkpoint and reports Reorganizing", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(state).To(Equal(ingest.Reorganizing))
			Expect(fakeStore.RollbackToCallCount()).To(Equal(1))
			_, target, hash := fakeStore.RollbackToArgsForCall(0)
			Expect(target).To(Equal(int64(100)))
			Expect(hash).To(Equal(""))
			Expect(fakeMetrics.IncReorgsDetectedCallCount()).To(Equal(1))
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(0))
		})
	})

	When("the next block has zero transactions", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 101}, nil)
			fakeTransport.FetchBlockHeaderReturns(rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"}, nil)
			fakeTransport.FetchBlockWithTransactionsReturns(rpc.Block{
				Header:       rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"},
				Transactions: nil,
			}, nil)
		})

		It("advances the checkpoint without appending any rows", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(0))
			Expect(fakeStore.AdvanceCheckpointCallCount()).To(Equal(1))
			_, number, hash := fakeStore.AdvanceCheckpointArgsForCall(0)
			Expect(number).To(Equal(int64(101)))
			Expect(hash).To(Equal("0xhash101"))
		})
	})

	When("a transaction in the block fails validation", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{Number: 101}, nil)
			fakeTransport.FetchBlockHeaderReturns(rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"}, nil)
			fakeTransport.FetchBlockWithTransactionsReturns(rpc.Block{
				Header: rpc.Header{Number: 101, Hash: "0xhash101", ParentHash: "0xhashA"},
				Transactions: []model.RawTransaction{
					{BlockNumber: 101, TransactionHash: "0xgood"},
					{BlockNumber: 101, TransactionHash: "0xbad"},
				},
			}, nil)

			fakeValidator.ValidateStub = func(raw model.RawTransaction) validator.Outcome {
				if raw.TransactionHash == "0xbad" {
					return validator.Outcome{OK: false, Reasons: []model.FailureReason{
						{BlockNumber: raw.BlockNumber, Reason: "amount: invalid"},
					}}
				}
				return validator.Outcome{OK: true, Record: model.Transaction{
					TransactionHash: raw.TransactionHash,
					BlockNumber:     raw.BlockNumber,
					Amount:          decimal.Zero,
				}}
			}
		})

		It("diverts the failing record and still commits the rest of the batch", func() {
			Expect(stepErr).NotTo(HaveOccurred())
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(1))
			_, records := fakeStore.AppendBatchArgsForCall(0)
			Expect(records).To(HaveLen(1))
			Expect(records[0].TransactionHash).To(Equal("0xgood"))
		})
	})

	When("reading the chain head fails", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 100, BlockHash: "0xhashA"}, nil)
			fakeTransport.CurrentHeadReturns(rpc.Header{}, errors.New("dial tcp: timeout"))
		})

		It("surfaces the error without mutating the store", func() {
			Expect(stepErr).To(HaveOccurred())
			Expect(fakeStore.AppendBatchCallCount()).To(Equal(0))
			Expect(fakeStore.RollbackToCallCount()).To(Equal(0))
		})
	})
})
