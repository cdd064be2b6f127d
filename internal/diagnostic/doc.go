// Package diagnostic defines the structured error surfaced by a failing
// generation pass.
//
// A pass either completes or reports exactly one Error; partial output is
// never emitted. The four kinds cover directive grammar failures, ineligible
// record shapes, unknown field references and omit/optional conflicts.
package diagnostic
