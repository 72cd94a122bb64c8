package ledger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/core/events"
)

// Store is the remote spreadsheet-backed record store. ListRecords is
// the only read; Submit and Delete are fire-and-check writes whose
// results are observed by refetching the list, never by patching it.
type Store interface {
	ListRecords(ctx context.Context) ([]Record, error)
	Submit(ctx context.Context, payload MutationPayload) error
	Delete(ctx context.Context, rowIndex int) error
}

type Service struct {
	store    Store
	bus      *events.EventBus
	logger   *slog.Logger
	sheetURL string

	mu      sync.RWMutex
	records []Record
	deletes DeleteFlow

	submitInFlight atomic.Bool
	deleteInFlight atomic.Bool
}

func NewService(store Store, bus *events.EventBus, logger *slog.Logger, sheetURL string) *Service {
	s := &Service{
		store:    store,
		bus:      bus,
		logger:   logger,
		sheetURL: sheetURL,
	}

	if bus != nil {
		bus.Subscribe(EventLedgerMutated, func(ctx context.Context, _ events.Event) error {
			return s.Refresh(ctx)
		})
	}

	return s
}

// Refresh fetches the full record list from the store and replaces the
// cached snapshot wholesale.
func (s *Service) Refresh(ctx context.Context) error {
	records, err := s.store.ListRecords(ctx)
	if err != nil {
		s.logger.Error("ledger refresh failed", "error", err)
		return internal.NewExternalError("failed to fetch ledger records", err)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	s.logger.Debug("ledger snapshot replaced", "records", len(records))
	return nil
}

// List performs a fresh fetch and returns the records together with the
// aggregate view recomputed from them. The cached snapshot is replaced
// as a side effect; on fetch failure the stale snapshot is left intact
// and the error is surfaced.
func (s *Service) List(ctx context.Context) (LedgerResponse, error) {
	if err := s.Refresh(ctx); err != nil {
		return LedgerResponse{}, err
	}

	s.mu.RLock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	s.mu.RUnlock()

	return LedgerResponse{
		Records:  records,
		Summary:  Summarize(records),
		SheetURL: s.sheetURL,
	}, nil
}

// Snapshot returns the cached record list without touching the store.
func (s *Service) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// SubmitEntry validates and writes an add (targetRow nil) or edit
// (targetRow set). An empty item or amount is a silent no-op: it
// returns (false, nil) and nothing is written. While a submit is in
// flight further submits are rejected with ErrWriteInFlight.
func (s *Service) SubmitEntry(ctx context.Context, form EntryFormDTO, targetRow *int) (bool, error) {
	state := EditorState{
		Mode:          EditorAdd,
		TargetRow:     targetRow,
		Date:          form.Date,
		Item:          form.Item,
		Amount:        form.Amount,
		Currency:      CurrencyINR,
		PaymentMethod: form.PaymentMethod,
		Note:          form.Note,
	}
	if targetRow != nil {
		state.Mode = EditorEdit
	}
	if state.Date == "" {
		state.Date = time.Now().Format("2006-01-02")
	}
	if Currency(form.Currency) == CurrencyTWD {
		state.Currency = CurrencyTWD
	}
	if state.PaymentMethod == "" {
		state.PaymentMethod = PaymentMethodCash
	}

	payload, ok := state.BuildPayload()
	if !ok {
		s.logger.Debug("ledger submit ignored, empty item or amount")
		return false, nil
	}

	if !s.submitInFlight.CompareAndSwap(false, true) {
		return false, internal.ErrWriteInFlight
	}
	defer s.submitInFlight.Store(false)

	if err := s.store.Submit(ctx, payload); err != nil {
		s.logger.Error("ledger submit failed",
			"action", payload.Action,
			"row_index", targetRow,
			"error", err)
		return false, internal.NewExternalError("failed to save expense record", err)
	}

	s.logger.Info("ledger record saved", "action", payload.Action, "item", payload.Item)

	if s.bus != nil {
		s.bus.Publish(ctx, NewLedgerMutatedEvent(payload.Action, targetRow))
	}
	return true, nil
}

// StageDelete marks a row for deletion without writing anything.
// Staging a new row replaces any previous stage.
func (s *Service) StageDelete(rowIndex int) {
	s.mu.Lock()
	s.deletes.Stage(rowIndex)
	s.mu.Unlock()
}

// CancelDelete clears the staged row, if any.
func (s *Service) CancelDelete() {
	s.mu.Lock()
	s.deletes.Cancel()
	s.mu.Unlock()
}

// StagedDelete returns the currently staged row index, nil when idle.
func (s *Service) StagedDelete() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deletes.Staged()
}

// ConfirmDelete performs the staged deletion. With nothing staged it is
// a no-op returning (false, nil). On store failure the stage is kept so
// the confirmation can be retried.
func (s *Service) ConfirmDelete(ctx context.Context) (bool, error) {
	s.mu.RLock()
	staged := s.deletes.Staged()
	s.mu.RUnlock()

	if staged == nil {
		return false, nil
	}
	rowIndex := *staged

	if !s.deleteInFlight.CompareAndSwap(false, true) {
		return false, internal.ErrWriteInFlight
	}
	defer s.deleteInFlight.Store(false)

	if err := s.store.Delete(ctx, rowIndex); err != nil {
		s.logger.Error("ledger delete failed", "row_index", rowIndex, "error", err)
		return false, internal.NewExternalError("failed to delete expense record", err)
	}

	s.mu.Lock()
	s.deletes.Cancel()
	s.mu.Unlock()

	s.logger.Info("ledger record deleted", "row_index", rowIndex)

	if s.bus != nil {
		s.bus.Publish(ctx, NewLedgerMutatedEvent(ActionDelete, &rowIndex))
	}
	return true, nil
}

// DeleteRecord stages and immediately confirms a deletion, for callers
// that carry their own confirmation step.
func (s *Service) DeleteRecord(ctx context.Context, rowIndex int) (bool, error) {
	s.StageDelete(rowIndex)
	return s.ConfirmDelete(ctx)
}
