// Package tally contains the core components of Tally, an engine for parallel partitioned reduction.
// This root package defines the types which are shared by the engine, its data sources and its
// consumers, and is an excellent overview of Tally's key concepts: Records held by an immutable
// Dataset are split into contiguous Ranges, each Range is reduced by its own worker, and every
// worker adds its partial sum to a run-scoped Accumulator before the result is verified against
// a sequential recomputation.
package tally
