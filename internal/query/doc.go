// Package query abstracts the analytics query service the analyzer reads
// snapshots through.
//
// The Engine interface mirrors the asynchronous submit / poll / fetch shape
// of Athena: a query is started, its execution polled until it reaches a
// terminal state, and its result rows fetched by execution ID. Result rows
// include the header row, exactly as the service returns them.
package query
