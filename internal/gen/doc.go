// Package gen renders resolved projections as Go source files.
//
// Generation uses text/template + go/format for readable, deterministic
// output: identical input produces byte-identical files, which downstream
// build caching relies on.
package gen
