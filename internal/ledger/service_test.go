package ledger_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/ledger"
)

// Mock store for testing
type mockStore struct {
	mu          sync.Mutex
	records     []ledger.Record
	submitted   []ledger.MutationPayload
	deleted     []int
	listCalls   int
	listError   error
	submitError error
	deleteError error

	// when set, Submit/Delete signal entry then block until the gate closes
	submitGate    chan struct{}
	submitEntered chan struct{}
	deleteGate    chan struct{}
	deleteEntered chan struct{}
}

func newMockStore(records ...ledger.Record) *mockStore {
	return &mockStore{records: records}
}

func (m *mockStore) ListRecords(ctx context.Context) ([]ledger.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listError != nil {
		return nil, m.listError
	}
	out := make([]ledger.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

func (m *mockStore) Submit(ctx context.Context, payload ledger.MutationPayload) error {
	if m.submitGate != nil {
		close(m.submitEntered)
		<-m.submitGate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.submitError != nil {
		return m.submitError
	}
	m.submitted = append(m.submitted, payload)
	return nil
}

func (m *mockStore) Delete(ctx context.Context, rowIndex int) error {
	if m.deleteGate != nil {
		close(m.deleteEntered)
		<-m.deleteGate
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteError != nil {
		return m.deleteError
	}
	m.deleted = append(m.deleted, rowIndex)
	return nil
}

func (m *mockStore) listCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

var _ = Describe("LedgerService", func() {
	var (
		service *ledger.Service
		store   *mockStore
		logger  *slog.Logger
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		store = newMockStore(
			ledger.Record{RowIndex: 2, Item: "lunch", PaymentMethod: ledger.PaymentMethodCash, AmountINR: 500},
			ledger.Record{RowIndex: 3, Item: "sim card", PaymentMethod: ledger.PaymentMethodCard, AmountTWD: 300},
		)
		service = ledger.NewService(store, nil, logger, "https://docs.google.com/spreadsheets/d/test")
	})

	Describe("List", func() {
		It("fetches fresh records and recomputes the summary", func() {
			resp, err := service.List(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Records).To(HaveLen(2))
			Expect(resp.Summary.TotalINR).To(Equal(int64(500)))
			Expect(resp.Summary.TotalTWD).To(Equal(int64(300)))
			Expect(resp.SheetURL).To(ContainSubstring("spreadsheets"))
		})

		It("hits the store on every call instead of serving the snapshot", func() {
			_, err := service.List(ctx)
			Expect(err).ToNot(HaveOccurred())
			_, err = service.List(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(store.listCallCount()).To(Equal(2))
		})

		It("keeps the stale snapshot when the fetch fails", func() {
			_, err := service.List(ctx)
			Expect(err).ToNot(HaveOccurred())

			store.listError = errors.New("endpoint down")
			_, err = service.List(ctx)
			Expect(err).To(HaveOccurred())

			Expect(service.Snapshot()).To(HaveLen(2))
		})
	})

	Describe("SubmitEntry", func() {
		It("writes an add payload built from the form", func() {
			form := ledger.EntryFormDTO{
				Date: "2026-04-02", Item: "dinner", Amount: "120",
				Currency: "TWD", PaymentMethod: ledger.PaymentMethodCard,
			}

			submitted, err := service.SubmitEntry(ctx, form, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted).To(BeTrue())

			Expect(store.submitted).To(HaveLen(1))
			payload := store.submitted[0]
			Expect(payload.Action).To(Equal(ledger.ActionAdd))
			Expect(payload.AmountTWD).To(Equal(int64(120)))
			Expect(payload.AmountINR).To(BeZero())
			Expect(payload.Date).To(Equal("2026/04/02"))
		})

		It("writes an edit payload when a target row is given", func() {
			row := 3
			form := ledger.EntryFormDTO{
				Date: "2026-04-02", Item: "sim card", Amount: "350",
				Currency: "TWD", PaymentMethod: ledger.PaymentMethodCard,
			}

			submitted, err := service.SubmitEntry(ctx, form, &row)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted).To(BeTrue())
			Expect(store.submitted[0].Action).To(Equal(ledger.ActionEdit))
			Expect(*store.submitted[0].RowIndex).To(Equal(3))
		})

		It("silently ignores a form with no item", func() {
			submitted, err := service.SubmitEntry(ctx, ledger.EntryFormDTO{Amount: "100"}, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted).To(BeFalse())
			Expect(store.submitted).To(BeEmpty())
		})

		It("silently ignores a form with no amount", func() {
			submitted, err := service.SubmitEntry(ctx, ledger.EntryFormDTO{Item: "dinner"}, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted).To(BeFalse())
			Expect(store.submitted).To(BeEmpty())
		})

		It("surfaces a store failure as an external error", func() {
			store.submitError = errors.New("endpoint down")
			form := ledger.EntryFormDTO{Item: "dinner", Amount: "100", Currency: "INR"}

			submitted, err := service.SubmitEntry(ctx, form, nil)
			Expect(submitted).To(BeFalse())

			var appErr *internal.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeExternal))
		})

		It("rejects a second submit while one is in flight", func() {
			store.submitGate = make(chan struct{})
			store.submitEntered = make(chan struct{})
			form := ledger.EntryFormDTO{Item: "dinner", Amount: "100", Currency: "INR"}

			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				defer close(done)
				submitted, err := service.SubmitEntry(ctx, form, nil)
				Expect(err).ToNot(HaveOccurred())
				Expect(submitted).To(BeTrue())
			}()

			Eventually(store.submitEntered).Should(BeClosed())

			submitted, err := service.SubmitEntry(ctx, form, nil)
			Expect(submitted).To(BeFalse())
			Expect(err).To(MatchError(internal.ErrWriteInFlight))

			close(store.submitGate)
			Eventually(done).Should(BeClosed())
			store.submitGate = nil

			// flag is released after the write completes
			submitted, err = service.SubmitEntry(ctx, form, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(submitted).To(BeTrue())
		})
	})

	Describe("delete flow", func() {
		It("writes nothing until the staged delete is confirmed", func() {
			service.StageDelete(3)
			Expect(store.deleted).To(BeEmpty())

			deleted, err := service.ConfirmDelete(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(store.deleted).To(Equal([]int{3}))
			Expect(service.StagedDelete()).To(BeNil())
		})

		It("cancelling clears the stage without writing", func() {
			service.StageDelete(3)
			service.CancelDelete()

			deleted, err := service.ConfirmDelete(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(store.deleted).To(BeEmpty())
		})

		It("keeps the stage on store failure so the confirm can be retried", func() {
			service.StageDelete(3)
			store.deleteError = errors.New("endpoint down")

			deleted, err := service.ConfirmDelete(ctx)
			Expect(err).To(HaveOccurred())
			Expect(deleted).To(BeFalse())
			Expect(*service.StagedDelete()).To(Equal(3))

			store.deleteError = nil
			deleted, err = service.ConfirmDelete(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeTrue())
		})

		It("rejects a second confirm while a delete is in flight", func() {
			store.deleteGate = make(chan struct{})
			store.deleteEntered = make(chan struct{})
			service.StageDelete(3)

			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				defer close(done)
				deleted, err := service.ConfirmDelete(ctx)
				Expect(err).ToNot(HaveOccurred())
				Expect(deleted).To(BeTrue())
			}()

			Eventually(store.deleteEntered).Should(BeClosed())

			deleted, err := service.ConfirmDelete(ctx)
			Expect(deleted).To(BeFalse())
			Expect(err).To(MatchError(internal.ErrWriteInFlight))

			close(store.deleteGate)
			Eventually(done).Should(BeClosed())
			store.deleteGate = nil

			// the write went through exactly once and the stage is clear
			Expect(store.deleted).To(Equal([]int{3}))
			Expect(service.StagedDelete()).To(BeNil())
		})

		It("confirming with nothing staged is a no-op", func() {
			deleted, err := service.ConfirmDelete(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})
	})
})
