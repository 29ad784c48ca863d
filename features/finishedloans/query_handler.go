package finishedloans

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-loans-go/circulation"
	"github.com/AntonStoeckl/library-loans-go/features/shell"
)

// QueryHandler orchestrates the query processing workflow: Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventJournal shell.EventJournal
	observers    shell.Observers
}

// NewQueryHandler creates a new QueryHandler with the provided journal dependency and options.
func NewQueryHandler(eventJournal shell.EventJournal, opts ...shell.Option) (QueryHandler, error) {
	observers, err := shell.BuildObservers(opts...)
	if err != nil {
		return QueryHandler{}, err
	}

	return QueryHandler{eventJournal: eventJournal, observers: observers}, nil
}

// Handle reads all return events from the journal and projects the finished loans.
func (h QueryHandler) Handle(ctx context.Context, query Query) (FinishedLoans, error) {
	queryStart := time.Now()
	ctx, span := h.observers.StartQuerySpan(ctx, queryType)
	h.observers.LogQueryStart(ctx, queryType)

	storableEvents, maxSeq, err := h.eventJournal.Query(ctx, BuildEventFilter())
	if err != nil {
		h.observers.RecordQueryError(ctx, span, queryType, err, time.Since(queryStart))
		return FinishedLoans{}, err
	}

	history, err := circulation.DomainEventsFrom(storableEvents)
	if err != nil {
		h.observers.RecordQueryError(ctx, span, queryType, err, time.Since(queryStart))
		return FinishedLoans{}, err
	}

	result := Project(history, query, maxSeq)
	h.observers.RecordQuerySuccess(ctx, span, queryType, result.Count, time.Since(queryStart))

	return result, nil
}
