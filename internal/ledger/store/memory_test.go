package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/ledger"
	"github.com/yuchingtw/trip-companion/internal/ledger/store"
)

var _ = Describe("MemoryStore", func() {
	var (
		s   *store.MemoryStore
		ctx context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		s = store.NewMemoryStore(
			ledger.Record{RowIndex: 2, Item: "lunch", PaymentMethod: "cash", AmountINR: 500},
			ledger.Record{RowIndex: 3, Item: "sim card", PaymentMethod: "card", AmountTWD: 300},
		)
	})

	It("assigns fresh row indexes to adds", func() {
		err := s.Submit(ctx, ledger.MutationPayload{
			Action: ledger.ActionAdd, Date: "2026/04/01", Item: "dinner", Payer: "cash", AmountINR: 120,
		})
		Expect(err).ToNot(HaveOccurred())

		records, err := s.ListRecords(ctx)
		Expect(err).ToNot(HaveOccurred())
		Expect(records).To(HaveLen(3))
		Expect(records[2].RowIndex).To(Equal(4))
		Expect(records[2].Item).To(Equal("dinner"))
	})

	It("edits in place by row index, keeping identity stable", func() {
		row := 3
		err := s.Submit(ctx, ledger.MutationPayload{
			Action: ledger.ActionEdit, RowIndex: &row,
			Date: "2026/04/01", Item: "sim card", Payer: "card", AmountTWD: 350,
		})
		Expect(err).ToNot(HaveOccurred())

		records, _ := s.ListRecords(ctx)
		Expect(records).To(HaveLen(2))
		Expect(records[1].RowIndex).To(Equal(3))
		Expect(records[1].AmountTWD).To(Equal(int64(350)))
	})

	It("rejects an edit of an unknown row", func() {
		row := 99
		err := s.Submit(ctx, ledger.MutationPayload{Action: ledger.ActionEdit, RowIndex: &row, Item: "x"})
		Expect(err).To(MatchError(internal.ErrRecordNotFound))
	})

	It("deletes exactly one record and never reuses its index", func() {
		Expect(s.Delete(ctx, 2)).To(Succeed())

		records, _ := s.ListRecords(ctx)
		Expect(records).To(HaveLen(1))
		Expect(records[0].RowIndex).To(Equal(3))

		// the next add still advances past the highest index ever issued
		Expect(s.Submit(ctx, ledger.MutationPayload{Action: ledger.ActionAdd, Item: "tea", Payer: "cash", AmountINR: 20})).To(Succeed())
		records, _ = s.ListRecords(ctx)
		Expect(records[1].RowIndex).To(Equal(4))
	})

	It("rejects deleting an unknown row", func() {
		Expect(s.Delete(ctx, 42)).To(MatchError(internal.ErrRecordNotFound))
	})
})
