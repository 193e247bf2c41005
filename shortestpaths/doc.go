// Package shortestpaths exposes the native shortest-path algorithms on top
// of the graph facade. Each entry point encodes the application identifiers,
// dispatches one native execution and hands the result back as a lazy
// wrapper from the paths package; nothing is decoded until the caller asks.
package shortestpaths
