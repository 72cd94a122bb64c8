package ledger_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yuchingtw/trip-companion/internal/ledger"
)

var _ = Describe("EditorState", func() {
	Describe("OpenForAdd", func() {
		It("starts with today's date, INR and cash", func() {
			today := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
			state := ledger.OpenForAdd(today)

			Expect(state.Mode).To(Equal(ledger.EditorAdd))
			Expect(state.TargetRow).To(BeNil())
			Expect(state.Date).To(Equal("2026-04-02"))
			Expect(state.Currency).To(Equal(ledger.CurrencyINR))
			Expect(state.PaymentMethod).To(Equal(ledger.PaymentMethodCash))
			Expect(state.Item).To(BeEmpty())
			Expect(state.Amount).To(BeEmpty())
		})
	})

	Describe("OpenForEdit", func() {
		It("derives TWD when the TWD amount is positive", func() {
			state := ledger.OpenForEdit(ledger.Record{
				RowIndex: 7, Date: "2026/04/02", Item: "sim card",
				PaymentMethod: ledger.PaymentMethodCard, AmountTWD: 300,
			})

			Expect(state.Mode).To(Equal(ledger.EditorEdit))
			Expect(*state.TargetRow).To(Equal(7))
			Expect(state.Currency).To(Equal(ledger.CurrencyTWD))
			Expect(state.Amount).To(Equal("300"))
			Expect(state.Date).To(Equal("2026-04-02"))
		})

		It("derives INR otherwise, including the both-zero case", func() {
			state := ledger.OpenForEdit(ledger.Record{RowIndex: 3, Item: "placeholder"})
			Expect(state.Currency).To(Equal(ledger.CurrencyINR))
			Expect(state.Amount).To(Equal("0"))
		})

		It("defaults the payment method to cash when the tag is empty", func() {
			state := ledger.OpenForEdit(ledger.Record{RowIndex: 3, Item: "x", AmountINR: 10})
			Expect(state.PaymentMethod).To(Equal(ledger.PaymentMethodCash))
		})

		It("strips a time suffix from the stored date", func() {
			state := ledger.OpenForEdit(ledger.Record{RowIndex: 3, Item: "x", Date: "2026-04-02T00:00:00", AmountINR: 10})
			Expect(state.Date).To(Equal("2026-04-02"))
		})
	})

	Describe("BuildPayload", func() {
		It("routes the amount entirely into the selected currency", func() {
			state := ledger.EditorState{
				Mode: ledger.EditorAdd, Date: "2026-04-02", Item: "lunch",
				Amount: "500", Currency: ledger.CurrencyINR, PaymentMethod: ledger.PaymentMethodCash,
			}

			payload, ok := state.BuildPayload()
			Expect(ok).To(BeTrue())
			Expect(payload.Action).To(Equal(ledger.ActionAdd))
			Expect(payload.RowIndex).To(BeNil())
			Expect(payload.AmountINR).To(Equal(int64(500)))
			Expect(payload.AmountTWD).To(BeZero())
			Expect(payload.Date).To(Equal("2026/04/02"))
			Expect(payload.Payer).To(Equal(ledger.PaymentMethodCash))
			Expect(payload.PaymentType).To(BeEmpty())
		})

		It("zeroes the other side even when editing a record that carried it", func() {
			row := 7
			state := ledger.EditorState{
				Mode: ledger.EditorEdit, TargetRow: &row, Date: "2026-04-02",
				Item: "sim card", Amount: "300", Currency: ledger.CurrencyTWD,
				PaymentMethod: ledger.PaymentMethodCard,
			}

			payload, ok := state.BuildPayload()
			Expect(ok).To(BeTrue())
			Expect(payload.Action).To(Equal(ledger.ActionEdit))
			Expect(*payload.RowIndex).To(Equal(7))
			Expect(payload.AmountTWD).To(Equal(int64(300)))
			Expect(payload.AmountINR).To(BeZero())
		})

		It("is a no-op when the item is blank", func() {
			state := ledger.EditorState{Mode: ledger.EditorAdd, Item: "   ", Amount: "500"}
			_, ok := state.BuildPayload()
			Expect(ok).To(BeFalse())
		})

		It("is a no-op when the amount is empty", func() {
			state := ledger.EditorState{Mode: ledger.EditorAdd, Item: "lunch"}
			_, ok := state.BuildPayload()
			Expect(ok).To(BeFalse())
		})

		It("truncates a decimal amount to whole units", func() {
			state := ledger.EditorState{
				Mode: ledger.EditorAdd, Item: "lunch", Amount: "500.50",
				Currency: ledger.CurrencyINR,
			}
			payload, ok := state.BuildPayload()
			Expect(ok).To(BeTrue())
			Expect(payload.AmountINR).To(Equal(int64(500)))
		})

		It("treats an unparseable amount as zero rather than failing", func() {
			state := ledger.EditorState{
				Mode: ledger.EditorAdd, Item: "lunch", Amount: "abc",
				Currency: ledger.CurrencyINR,
			}
			payload, ok := state.BuildPayload()
			Expect(ok).To(BeTrue())
			Expect(payload.AmountINR).To(BeZero())
		})
	})
})

var _ = Describe("DeleteFlow", func() {
	It("moves idle → staged → idle through stage and cancel", func() {
		var flow ledger.DeleteFlow
		Expect(flow.Staged()).To(BeNil())

		flow.Stage(5)
		Expect(*flow.Staged()).To(Equal(5))

		flow.Cancel()
		Expect(flow.Staged()).To(BeNil())
	})

	It("replaces the staged row when staging again", func() {
		var flow ledger.DeleteFlow
		flow.Stage(5)
		flow.Stage(9)
		Expect(*flow.Staged()).To(Equal(9))
	})
})
