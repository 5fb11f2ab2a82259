package repository_test

import (
	"context"
	"errors"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/db"
	"payoutd/internal/repository"
	"payoutd/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PayoutRepository", func() {
	var (
		repo        *repository.PayoutRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPayoutRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate ledger and failure tables", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.LedgerEntry{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.FailureRecord{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("UpsertOutcomes", func() {
		var (
			entries []repository.LedgerEntry
			err     error
		)

		BeforeEach(func() {
			c := claim.Claim{ID: "c1", UserKey: "u1", EventID: "e1", RecipientAddress: "0xabc", Source: "web"}
			entries = []repository.LedgerEntry{repository.NewLedgerEntry(c, "0xhash", true, "")}
		})

		JustBeforeEach(func() {
			err = repo.UpsertOutcomes(ctx, entries)
		})

		It("should upsert keyed by user and event keeping success sticky", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.UpsertCallCount()).To(Equal(1))

			_, records, opts := fakeStorage.UpsertArgsForCall(0)
			Expect(records).To(BeAssignableToTypeOf(&[]repository.LedgerEntry{}))
			Expect(*records.(*[]repository.LedgerEntry)).To(HaveLen(1))
			Expect(opts.ConflictColumns).To(Equal([]string{"user_key", "event_id"}))
			Expect(opts.UpdateColumns).To(ContainElements("tx_hash", "success", "error"))
			Expect(opts.UpdateWhere).To(Equal("ledger_entries.success = false"))
		})

		When("there is nothing to write", func() {
			BeforeEach(func() {
				entries = nil
			})

			It("should skip the database", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStorage.UpsertCallCount()).To(BeZero())
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeStorage.UpsertReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("upsert ledger entries: fake error"))
			})
		})
	})

	Describe("GetEntry", func() {
		var (
			entry repository.LedgerEntry
			err   error
		)

		JustBeforeEach(func() {
			entry, err = repo.GetEntry(ctx, "u1", "e1")
		})

		When("the entry exists", func() {
			BeforeEach(func() {
				fakeStorage.FindOneStub = func(_ context.Context, dest any, conds map[string]any) error {
					Expect(conds).To(Equal(map[string]any{"user_key": "u1", "event_id": "e1"}))
					*dest.(*repository.LedgerEntry) = repository.LedgerEntry{UserKey: "u1", EventID: "e1", Success: true}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entry.Success).To(BeTrue())
			})
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeStorage.FindOneReturns(db.ErrNotFound)
			})

			It("should return ErrEntryNotFound", func() {
				Expect(err).To(MatchError(repository.ErrEntryNotFound))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeStorage.FindOneReturns(fakeErr)
			})

			It("should wrap the error", func() {
				Expect(err).To(MatchError("get ledger entry: fake error"))
			})
		})
	})

	Describe("failure records", func() {
		var record repository.FailureRecord

		BeforeEach(func() {
			c := claim.Claim{ID: "c1", UserKey: "u1", EventID: "e1", RecipientAddress: "0xabc", Source: "web", EnqueuedAt: time.Now()}
			record = repository.NewFailureRecord(uuid.NewString(), c)
		})

		It("should round-trip the claim", func() {
			Expect(record.Claim().ID).To(Equal("c1"))
			Expect(record.Claim().Source).To(Equal("web"))
		})

		It("should create records in one call", func() {
			Expect(repo.CreateFailures(ctx, []repository.FailureRecord{record, record})).To(Succeed())
			_, records := fakeStorage.CreateArgsForCall(0)
			Expect(*records.(*[]repository.FailureRecord)).To(HaveLen(2))
		})

		It("should map a missing record", func() {
			fakeStorage.GetOneByReturns(db.ErrNotFound)
			_, err := repo.GetFailure(ctx, record.ID)
			Expect(err).To(MatchError(repository.ErrFailureNotFound))

			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal(record.ID))
		})

		It("should save updates", func() {
			Expect(repo.UpdateFailure(ctx, &record)).To(Succeed())
			_, saved := fakeStorage.SaveArgsForCall(0)
			Expect(saved).To(Equal(&record))
		})

		It("should delete by id", func() {
			Expect(repo.DeleteFailure(ctx, record.ID)).To(Succeed())
			_, model, column, value := fakeStorage.DeleteByArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.FailureRecord{}))
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal(record.ID))
		})

		It("should list by status", func() {
			_, err := repo.ListFailures(ctx, "retry_scheduled", "processing")
			Expect(err).NotTo(HaveOccurred())
			_, column, value, _ := fakeStorage.GetAllByArgsForCall(0)
			Expect(column).To(Equal("status"))
			Expect(value).To(Equal([]string{"retry_scheduled", "processing"}))
		})
	})
})
