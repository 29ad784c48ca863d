// Package shell contains the infrastructure shared by the query features: the journal port,
// the query handler options, and the observability helpers for query handlers.
package shell
