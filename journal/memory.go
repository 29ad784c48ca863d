package journal

import (
	"context"
	"slices"
	"sync"
)

// MemoryJournal is an append-only, in-memory journal which is safe for concurrent use.
type MemoryJournal struct {
	mu     sync.RWMutex
	events []sequencedEvent
}

type sequencedEvent struct {
	sequenceNumber MaxSequenceNumberUint
	event          StorableEvent
}

// NewMemoryJournal creates an empty MemoryJournal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		events: make([]sequencedEvent, 0),
	}
}

// Append adds the events to the journal in the given order, assigning consecutive sequence numbers starting at 1.
// It is a no-op for zero events and fails only if the context is already done.
func (j *MemoryJournal) Append(ctx context.Context, storableEvents ...StorableEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	next := MaxSequenceNumberUint(len(j.events))
	for _, event := range storableEvents {
		next++
		j.events = append(j.events, sequencedEvent{sequenceNumber: next, event: event})
	}

	return nil
}

// Query returns all events matching the filter in append order,
// together with the highest sequence number among them (0 if nothing matched).
func (j *MemoryJournal) Query(ctx context.Context, filter Filter) (StorableEvents, MaxSequenceNumberUint, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()

	result := make(StorableEvents, 0)
	maxSequenceNumber := MaxSequenceNumberUint(0)

	for _, se := range j.events {
		if !filter.Matches(se.event) {
			continue
		}

		result = append(result, se.event)
		maxSequenceNumber = se.sequenceNumber
	}

	return slices.Clip(result), maxSequenceNumber, nil
}

// Len returns the number of events in the journal.
func (j *MemoryJournal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.events)
}
