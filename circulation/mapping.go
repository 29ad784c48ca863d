package circulation

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-loans-go/journal"
)

var (
	// ErrMappingToStorableEventFailed is returned when domain event or metadata serialization fails.
	ErrMappingToStorableEventFailed = errors.New("mapping to storable event failed")

	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrUnknownEventType is returned for unrecognized event types.
	ErrUnknownEventType = errors.New("unknown event type")
)

// StorableEventFrom converts a DomainEvent and EventMetadata to a journal.StorableEvent.
func StorableEventFrom(event DomainEvent, metadata EventMetadata) (journal.StorableEvent, error) {
	payloadJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return journal.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	metadataJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(metadata)
	if err != nil {
		return journal.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	storableEvent, err := journal.BuildStorableEvent(event.IsEventType(), event.HasOccurredAt(), payloadJSON, metadataJSON)
	if err != nil {
		return journal.StorableEvent{}, errors.Join(ErrMappingToStorableEventFailed, err)
	}

	return storableEvent, nil
}

// DomainEventsFrom converts multiple StorableEvents to DomainEvents, keeping their order.
func DomainEventsFrom(storableEvents journal.StorableEvents) (DomainEvents, error) {
	domainEvents := make(DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent journal.StorableEvent) (DomainEvent, error) {
	switch storableEvent.EventType {
	case BookAddedToCatalogEventType:
		return unmarshalPayload[BookAddedToCatalog](storableEvent.PayloadJSON)

	case UserRegisteredEventType:
		return unmarshalPayload[UserRegistered](storableEvent.PayloadJSON)

	case BookLentToUserEventType:
		return unmarshalPayload[BookLentToUser](storableEvent.PayloadJSON)

	case LendingBookFailedEventType:
		return unmarshalPayload[LendingBookFailed](storableEvent.PayloadJSON)

	case BookReturnedByUserEventType:
		return unmarshalPayload[BookReturnedByUser](storableEvent.PayloadJSON)

	case ReturningBookFailedEventType:
		return unmarshalPayload[ReturningBookFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrUnknownEventType)
}

func unmarshalPayload[T DomainEvent](payloadJSON []byte) (DomainEvent, error) {
	var payload T

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
