package itinerary

import (
	"context"
	"log/slog"
	"sync"
	"time"

	internal "github.com/yuchingtw/trip-companion/internal"
)

// Repository persists the schedule as a whole. Load returns the full
// day list; Replace swaps it atomically. There are no row-level
// operations: every timeline transform produces a complete new snapshot
// and the snapshot is what gets saved.
type Repository interface {
	Load(ctx context.Context) ([]Day, error)
	Replace(ctx context.Context, days []Day) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time

	mu   sync.RWMutex
	days []Day
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Reload replaces the in-memory schedule from the repository,
// backfilling ids for legacy events stored without one.
func (s *Service) Reload(ctx context.Context) error {
	days, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("schedule load failed", "error", err)
		return internal.NewInternalError("failed to load itinerary", err)
	}

	days = BackfillEventIDs(days)

	s.mu.Lock()
	s.days = days
	s.mu.Unlock()

	s.logger.Info("schedule loaded", "days", len(days))
	return nil
}

// Days returns the full schedule.
func (s *Service) Days(ctx context.Context) []Day {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Day returns one day by position.
func (s *Service) Day(ctx context.Context, position int) (Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.days {
		if d.Position == position {
			d.Events = cloneEvents(d.Events)
			return d, nil
		}
	}
	return Day{}, internal.ErrDayNotFound
}

// AddEvent creates a timeline entry on a day. The transform runs on a
// copy, the whole new schedule is persisted, and only then does the
// in-memory state move. Changed=false means the form was empty and
// nothing happened anywhere.
func (s *Service) AddEvent(ctx context.Context, dayPosition int, form EventFormDTO) (MutationResponse, error) {
	id := NewEventID(s.now())
	return s.mutateDay(ctx, dayPosition, func(day Day) (Day, bool) {
		return AddEvent(day, form, id)
	})
}

// EditEvent rewrites one entry, matching by id with a time+description
// fallback. The entry's id and locationId survive the edit.
func (s *Service) EditEvent(ctx context.Context, dayPosition int, eventID string, form EventFormDTO) (MutationResponse, error) {
	return s.mutateDay(ctx, dayPosition, func(day Day) (Day, bool) {
		return EditEvent(day, eventID, form)
	})
}

// DeleteEvent removes one entry by id.
func (s *Service) DeleteEvent(ctx context.Context, dayPosition int, eventID string) (MutationResponse, error) {
	return s.mutateDay(ctx, dayPosition, func(day Day) (Day, bool) {
		return DeleteEvent(day, eventID)
	})
}

func (s *Service) mutateDay(ctx context.Context, dayPosition int, transform func(Day) (Day, bool)) (MutationResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, d := range s.days {
		if d.Position == dayPosition {
			idx = i
			break
		}
	}
	if idx < 0 {
		return MutationResponse{}, internal.ErrDayNotFound
	}

	current := s.days[idx]
	current.Events = cloneEvents(current.Events)

	updated, changed := transform(current)
	if !changed {
		s.logger.Debug("timeline write ignored", "day", dayPosition)
		return MutationResponse{Changed: false, Day: current}, nil
	}

	next := make([]Day, len(s.days))
	copy(next, s.days)
	next[idx] = updated

	if err := s.repo.Replace(ctx, next); err != nil {
		s.logger.Error("schedule save failed", "day", dayPosition, "error", err)
		return MutationResponse{}, internal.NewInternalError("failed to save itinerary", err)
	}

	s.days = next
	s.logger.Info("timeline updated", "day", dayPosition, "events", len(updated.Events))
	return MutationResponse{Changed: true, Day: updated}, nil
}

func (s *Service) snapshotLocked() []Day {
	out := make([]Day, len(s.days))
	for i, d := range s.days {
		d.Events = cloneEvents(d.Events)
		out[i] = d
	}
	return out
}
