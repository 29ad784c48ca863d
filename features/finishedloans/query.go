package finishedloans

const (
	queryType = "FinishedLoans"
)

// Query represents the input for querying all finished loans.
// This query uses an empty struct since it doesn't require any input parameters.
type Query struct{}

// BuildQuery creates a new Query for retrieving all finished loans.
func BuildQuery() Query {
	return Query{}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
