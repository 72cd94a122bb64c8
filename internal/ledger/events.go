package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/yuchingtw/trip-companion/internal/core/events"
)

// EventLedgerMutated is published after any successful remote write so
// subscribers can refetch the full list. The core never patches its
// local snapshot from a write; the refetch is the only way state moves.
const EventLedgerMutated = "ledger.mutated"

func NewLedgerMutatedEvent(action string, rowIndex *int) events.BaseEvent {
	data := map[string]interface{}{"action": action}
	if rowIndex != nil {
		data["row_index"] = *rowIndex
	}
	return events.BaseEvent{
		ID:        uuid.NewString(),
		Type:      EventLedgerMutated,
		Timestamp: time.Now(),
		Data:      data,
	}
}
