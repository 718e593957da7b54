// Package navigator derives structure from flat MBTA route and stop
// listings: a stop-name to routes index, a route adjacency graph built from
// shared stop names, shortest route-transfer paths via breadth-first search,
// and summary statistics (extremal stop counts, transfer stops).
//
// Stop identifiers returned by the API are only unique within a single
// route's listing, so every cross-route comparison in this package keys on
// stop name.
//
// All data is request-scoped: a Network snapshot is loaded once per command
// invocation, the derived index and graph are built from it in memory, and
// nothing is persisted or shared across invocations.
package navigator
