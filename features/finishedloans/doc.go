// Package finishedloans provides the query for all loans that have been returned, with their fines.
//
// It only processes BookReturnedByUser events, which carry the days late and the assessed fine
// of the closed loan, and sums up the fines.
package finishedloans
