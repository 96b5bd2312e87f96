// Package metrics provides optional prometheus instrumentation around
// ldpc.Code decode calls: an iteration-count histogram and an
// outcome-labeled counter. It is a thin wrapper, not a dependency of
// the ldpc package itself — the core stays free of I/O and hidden
// state, so instrumentation lives at the edge and callers opt in by
// constructing an Instrumented wrapper around an existing *ldpc.Code.
package metrics
