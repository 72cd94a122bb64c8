package store

import (
	"context"
	"sync"

	internal "github.com/yuchingtw/trip-companion/internal"
	"github.com/yuchingtw/trip-companion/internal/ledger"
)

// MemoryStore keeps the ledger in process, for development and tests.
// It mimics the web app's contract: adds assign the next row index,
// edits and deletes address rows by index, and deleted indexes are
// never reused.
type MemoryStore struct {
	mu      sync.Mutex
	records []ledger.Record
	nextRow int
}

func NewMemoryStore(seed ...ledger.Record) *MemoryStore {
	s := &MemoryStore{nextRow: 2}
	for _, r := range seed {
		if r.RowIndex >= s.nextRow {
			s.nextRow = r.RowIndex + 1
		}
		s.records = append(s.records, r)
	}
	return s
}

func (s *MemoryStore) ListRecords(ctx context.Context) ([]ledger.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ledger.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Submit(ctx context.Context, payload ledger.MutationPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := ledger.Record{
		Date:          payload.Date,
		Item:          payload.Item,
		PaymentMethod: payload.Payer,
		AmountTWD:     payload.AmountTWD,
		AmountINR:     payload.AmountINR,
		Note:          payload.Note,
	}

	if payload.Action == ledger.ActionEdit && payload.RowIndex != nil {
		for i, existing := range s.records {
			if existing.RowIndex == *payload.RowIndex {
				record.RowIndex = existing.RowIndex
				s.records[i] = record
				return nil
			}
		}
		return internal.ErrRecordNotFound
	}

	record.RowIndex = s.nextRow
	s.nextRow++
	s.records = append(s.records, record)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, rowIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.RowIndex == rowIndex {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return internal.ErrRecordNotFound
}
