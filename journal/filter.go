package journal

import (
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Filter selects events from the journal. An empty Filter matches every event.
// A Filter matches an event if ANY of its FilterItem(s) matches.
type Filter struct {
	items []FilterItem
}

// Items returns the FilterItem(s) of the Filter.
func (f Filter) Items() []FilterItem {
	return f.items
}

// Matches reports whether the given event is selected by the Filter.
func (f Filter) Matches(event StorableEvent) bool {
	if len(f.items) == 0 {
		return true
	}

	for _, item := range f.items {
		if item.matches(event) {
			return true
		}
	}

	return false
}

// FilterItem matches an event if its type is one of EventTypes (when given)
// AND any, or all, of its Predicates match the payload (when given).
type FilterItem struct {
	eventTypes             []string
	predicates             []FilterPredicate
	allPredicatesMustMatch bool
}

// EventTypes returns the sanitized event types of the FilterItem.
func (fi FilterItem) EventTypes() []string {
	return fi.eventTypes
}

// Predicates returns the sanitized predicates of the FilterItem.
func (fi FilterItem) Predicates() []FilterPredicate {
	return fi.predicates
}

// AllPredicatesMustMatch returns true if the predicates are combined with AND instead of OR.
func (fi FilterItem) AllPredicatesMustMatch() bool {
	return fi.allPredicatesMustMatch
}

func (fi FilterItem) matches(event StorableEvent) bool {
	if len(fi.eventTypes) > 0 && !slices.Contains(fi.eventTypes, event.EventType) {
		return false
	}

	if len(fi.predicates) == 0 {
		return true
	}

	for _, p := range fi.predicates {
		matched := p.matches(event.PayloadJSON)

		if matched && !fi.allPredicatesMustMatch {
			return true
		}

		if !matched && fi.allPredicatesMustMatch {
			return false
		}
	}

	return fi.allPredicatesMustMatch
}

// FilterPredicate compares a top-level payload field, rendered as a string, with a value.
type FilterPredicate struct {
	key string
	val string
}

// P builds a FilterPredicate.
func P(key string, val string) FilterPredicate {
	return FilterPredicate{key: key, val: val}
}

// Key returns the payload field name.
func (fp FilterPredicate) Key() string {
	return fp.key
}

// Val returns the expected value.
func (fp FilterPredicate) Val() string {
	return fp.val
}

func (fp FilterPredicate) matches(payloadJSON []byte) bool {
	field := jsoniter.Get(payloadJSON, fp.key)
	if field.LastError() != nil {
		return false
	}

	return field.ToString() == fp.val
}

// FilterBuilder starts building a Filter.
type FilterBuilder interface {
	// Matching starts a new FilterItem.
	Matching() FilterItemBuilder

	// MatchingAnyEvent directly creates an empty Filter.
	MatchingAnyEvent() Filter
}

// FilterItemBuilder adds event types and predicates to the current FilterItem.
//
// All methods sanitize their input: empty values are removed, the rest is sorted and deduplicated.
type FilterItemBuilder interface {
	AnyEventTypeOf(eventType string, eventTypes ...string) FilterItemBuilder
	AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder
	AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder
	AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder
	AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder

	// OrMatching finalizes the current FilterItem and starts a new one.
	OrMatching() FilterItemBuilder

	// Finalize returns the Filter including the current FilterItem.
	Finalize() Filter
}

type filterBuilder struct {
	filter  Filter
	current FilterItem
}

// BuildEventFilter creates a FilterBuilder which must eventually be finalized with Finalize() or MatchingAnyEvent().
func BuildEventFilter() FilterBuilder {
	return filterBuilder{}
}

func (fb filterBuilder) Matching() FilterItemBuilder {
	fb.current = FilterItem{}

	return fb
}

func (fb filterBuilder) MatchingAnyEvent() Filter {
	return Filter{}
}

func (fb filterBuilder) AnyEventTypeOf(eventType string, eventTypes ...string) FilterItemBuilder {
	all := append([]string{eventType}, eventTypes...)
	all = append(all, fb.current.eventTypes...)
	all = slices.DeleteFunc(all, func(e string) bool { return e == "" })
	slices.Sort(all)
	fb.current.eventTypes = slices.Clip(slices.Compact(all))

	return fb
}

func (fb filterBuilder) AnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	fb.current.predicates = sanitizePredicates(fb.current.predicates, predicate, predicates...)

	return fb
}

func (fb filterBuilder) AllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	fb.current.allPredicatesMustMatch = true
	fb.current.predicates = sanitizePredicates(fb.current.predicates, predicate, predicates...)

	return fb
}

func (fb filterBuilder) AndAnyPredicateOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	return fb.AnyPredicateOf(predicate, predicates...)
}

func (fb filterBuilder) AndAllPredicatesOf(predicate FilterPredicate, predicates ...FilterPredicate) FilterItemBuilder {
	return fb.AllPredicatesOf(predicate, predicates...)
}

func (fb filterBuilder) OrMatching() FilterItemBuilder {
	fb.filter.items = append(slices.Clone(fb.filter.items), fb.current)
	fb.current = FilterItem{}

	return fb
}

func (fb filterBuilder) Finalize() Filter {
	return Filter{items: append(slices.Clone(fb.filter.items), fb.current)}
}

func sanitizePredicates(existing []FilterPredicate, predicate FilterPredicate, predicates ...FilterPredicate) []FilterPredicate {
	all := append([]FilterPredicate{predicate}, predicates...)
	all = append(all, existing...)
	all = slices.DeleteFunc(all, func(p FilterPredicate) bool { return p.key == "" || p.val == "" })
	slices.SortFunc(all, func(a, b FilterPredicate) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}

		return strings.Compare(a.val, b.val)
	})

	return slices.Clip(slices.Compact(all))
}
