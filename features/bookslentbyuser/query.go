package bookslentbyuser

import (
	"github.com/AntonStoeckl/library-loans-go/library"
)

const (
	queryType = "BooksLentByUser"
)

// Query represents the intent to query books currently lent to a user.
type Query struct {
	UserID library.UserIDInt
}

// BuildQuery creates a new Query with the provided user ID.
func BuildQuery(userID library.UserIDInt) Query {
	return Query{
		UserID: userID,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
