// Package plan is the pure projection engine: it partitions a record's
// fields against a directive and synthesizes the abstract descriptions of
// the projection type, the remainder type and the five conversion
// operations.
//
// The package performs no I/O and holds no state across invocations;
// independent records may be resolved in parallel by the caller.
package plan
