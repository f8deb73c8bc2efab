package store_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/evmchain/indexer/internal/errkind"
	"github.com/evmchain/indexer/internal/model"
	"github.com/evmchain/indexer/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GormStore", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		s      *store.GormStore
		ctx    context.Context
	)

	BeforeEach(func() {
		var err error
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})
		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		s = &store.GormStore{DB: gormDB}
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("AppendBatch", func() {
		When("the batch is empty", func() {
			It("is a no-op", func() {
				Expect(s.AppendBatch(ctx, nil)).To(Succeed())
			})
		})

		When("the batch has records", func() {
			var records []model.Transaction

			BeforeEach(func() {
				amount, err := decimal.NewFromString("1000")
				Expect(err).NotTo(HaveOccurred())
				records = []model.Transaction{{
					TransactionHash:  "0xaaa",
					BlockNumber:      100,
					BlockHash:        "0xhash100",
					TransactionIndex: 0,
					FromAddress:      "0xfrom",
					Amount:           amount,
				}}

				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "transactions".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`INSERT INTO "checkpoints".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("inserts the batch and advances the checkpoint in one transaction", func() {
				Expect(s.AppendBatch(ctx, records)).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "transactions".*`).
					WillReturnError(errors.New("constraint violation"))
				mock.ExpectRollback()
			})

			It("rolls the transaction back and tags the error as a persistence failure", func() {
				err := s.AppendBatch(ctx, []model.Transaction{{
					TransactionHash: "0xbbb", BlockNumber: 1, Amount: decimal.Zero,
				}})
				Expect(errors.Is(err, errkind.ErrPersistence)).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("RollbackTo", func() {
		When("target is negative", func() {
			It("refuses with a precondition error", func() {
				err := s.RollbackTo(ctx, -1, "")
				Expect(errors.Is(err, errkind.ErrPrecondition)).To(BeTrue())
			})
		})

		When("target is valid", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM "transactions".*`).
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectQuery(`SELECT \* FROM "checkpoints".*`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "block_number", "block_hash", "last_updated"}).
						AddRow("chain_head", 100, "0xhash100", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
				mock.ExpectExec(`INSERT INTO "checkpoints".*`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("deletes rolled-back rows and rewinds the checkpoint atomically", func() {
				Expect(s.RollbackTo(ctx, 100, "0xnewhash")).To(Succeed())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("ReadCheckpoint", func() {
		When("no checkpoint row exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "checkpoints".*`).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("returns ErrNotFound", func() {
				_, err := s.ReadCheckpoint(ctx)
				Expect(errors.Is(err, errkind.ErrNotFound)).To(BeTrue())
			})
		})
	})

	Describe("AdvanceCheckpoint", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "checkpoints".*`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("advances the checkpoint without inserting any rows", func() {
			Expect(s.AdvanceCheckpoint(ctx, 200, "0xhash200")).To(Succeed())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
