// Package bookslentbyuser provides the query for the books a user currently has on loan.
//
// The projection replays BookLentToUser and BookReturnedByUser events from the circulation journal.
// A loan is tracked from the moment it is lent until the matching return event, identified by its loan ID.
package bookslentbyuser
