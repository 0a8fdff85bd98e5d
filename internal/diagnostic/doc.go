// Package diagnostic provides structured warnings, errors, and
// "why this mapped" notes for an auto-mapping run.
//
// Key capabilities:
//   - Unmapped field warnings with the best rejected candidate
//   - Shared column reports when two fields land on one column
//   - Type mismatch warnings for accepted matches
package diagnostic
