// Package directive parses //partial: projection directives.
//
// A directive payload is an order-independent, comma-separated list of at
// most one target-name string literal and at most one each of derive(...),
// omit(...) and optional(...). The scanner and parser work on the raw
// payload text and report positions as byte offsets; Collect relocates
// offsets onto file positions and applies the zero-directives default.
package directive
