// Package plan proposes field-to-column mappings and explains them.
//
// Proposal pipeline, per business field not yet mapped:
//  1. Exact pass: lower-cased column name equals the field name or code
//  2. Fuzzy pass: rank every column by similarity plus lexicon boost
//  3. Threshold: accept the best column only when its total clears the threshold
//
// Matching is greedy and local to each field: a column chosen for one field
// stays available to the next, and earlier choices are never revisited.
package plan
