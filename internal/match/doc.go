// Package match provides Levenshtein similarity, the semantic variation
// lexicon, type affinity scoring, and candidate ranking for field matching.
//
// Key functions:
//   - Similarity: normalized edit-distance similarity between two names
//   - Lexicon.Boost: bonus for names that share a synonym group
//   - ScoreTypeAffinity: informational fit of a field type to a column type
//   - RankCandidates: ranks columns for one business field
package match
