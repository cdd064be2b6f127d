// Package schema models the source record a projection is derived from and
// validates directives against it.
//
// Field types and annotations are opaque: the engine copies them verbatim
// and never interprets them. Shape and reference checks are the only
// semantic validation; type-level concerns (capability satisfiability,
// target-name collisions) are deferred to the Go compiler.
package schema
