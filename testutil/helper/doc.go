// Package helper provides test doubles and small arrange helpers shared by the library test suites.
//
// It contains spies for the observability interfaces (log handler, contextual logger, metrics and
// tracing collectors), a Notifier spy which captures every notification, and a controllable clock
// for deterministic due dates and fines.
package helper
