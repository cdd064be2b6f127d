// Package analyze is the host-language boundary: it loads Go packages,
// finds struct declarations annotated with //partial: directives and hands
// the engine an opaque record schema plus the raw directive payloads.
package analyze
