package rollback_test

import (
	"context"
	"errors"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/rollback"
	"github.com/evmchain/indexer/internal/rollback/fake"
	"github.com/evmchain/indexer/internal/rpc"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Run", func() {
	var (
		fakeStore     *fake.Store
		fakeTransport *fake.Transport
		ctx           context.Context
		outcome       rollback.Outcome
		runErr        error
		runTarget     int64
		runHash       string
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		fakeTransport = new(fake.Transport)
		fakeTransport.FetchBlockHeaderReturns(rpc.Header{Hash: "0xcanonical"}, nil)
		ctx = context.Background()
		runTarget = 50
		runHash = ""
	})

	JustBeforeEach(func() {
		outcome, runErr = rollback.Run(ctx, zap.NewNop().Sugar(), fakeStore, fakeTransport, runTarget, runHash)
	})

	When("the target is negative", func() {
		BeforeEach(func() {
			runTarget = -1
		})

		It("refuses without touching the store", func() {
			Expect(errors.Is(runErr, errkind.ErrPrecondition)).To(BeTrue())
			Expect(fakeStore.ReadCheckpointCallCount()).To(Equal(0))
			Expect(fakeStore.RollbackToCallCount()).To(Equal(0))
		})
	})

	When("no checkpoint exists yet", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{}, errkind.ErrNotFound)
		})

		It("refuses with a precondition error", func() {
			Expect(errors.Is(runErr, errkind.ErrPrecondition)).To(BeTrue())
			Expect(fakeStore.RollbackToCallCount()).To(Equal(0))
		})
	})

	When("the target is ahead of the current checkpoint", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 40}, nil)
		})

		It("refuses to roll forward", func() {
			Expect(errors.Is(runErr, errkind.ErrPrecondition)).To(BeTrue())
			Expect(fakeStore.RollbackToCallCount()).To(Equal(0))
		})
	})

	When("the target is behind the current checkpoint and no hash override is given", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 90}, nil)
		})

		It("recovers the canonical hash for target-1 and rolls back", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(fakeTransport.FetchBlockHeaderCallCount()).To(Equal(1))
			_, n := fakeTransport.FetchBlockHeaderArgsForCall(0)
			Expect(n).To(Equal(int64(49)))

			Expect(fakeStore.RollbackToCallCount()).To(Equal(1))
			_, target, hash := fakeStore.RollbackToArgsForCall(0)
			Expect(target).To(Equal(int64(50)))
			Expect(hash).To(Equal("0xcanonical"))
			Expect(outcome.PreviousHead).To(Equal(int64(90)))
			Expect(outcome.NewHead).To(Equal(int64(49)))
		})
	})

	When("an explicit hash override is given", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 90}, nil)
			runHash = "0xoverride"
		})

		It("skips the recovery fetch and uses the override", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(fakeTransport.FetchBlockHeaderCallCount()).To(Equal(0))
			_, _, hash := fakeStore.RollbackToArgsForCall(0)
			Expect(hash).To(Equal("0xoverride"))
		})
	})

	When("the store's rollback itself fails", func() {
		BeforeEach(func() {
			fakeStore.ReadCheckpointReturns(model.Checkpoint{BlockNumber: 90}, nil)
			fakeStore.RollbackToReturns(errkind.ErrRollback)
		})

		It("surfaces the error", func() {
			Expect(errors.Is(runErr, errkind.ErrRollback)).To(BeTrue())
		})
	})
})
