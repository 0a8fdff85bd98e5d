package match

import (
	"sort"
	"strings"

	"field-mapper/internal/mapping"
)

// Candidate represents a potential mapping from a business field to a column.
type Candidate struct {
	Column *mapping.Column
	// Index is the column's position in the ranked column list.
	Index int

	// Scoring components
	NameScore float64 // Normalized Levenshtein similarity (0-1)
	Boost     float64 // Semantic variation bonus, uncapped

	// Total is NameScore + Boost. Higher is better; may exceed 1.
	Total float64

	// Affinity is informational and does not contribute to Total.
	Affinity TypeAffinityResult

	// Lower-cased names the scores were computed on.
	FieldName  string
	ColumnName string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every column against field and returns the
// candidates sorted by total score, descending. Equal totals keep column
// order, so the first-seen column wins a tie.
func RankCandidates(field mapping.Field, columns []mapping.Column, lex *Lexicon) CandidateList {
	if lex == nil {
		lex = defaultLexicon
	}

	candidates := make(CandidateList, 0, len(columns))

	fieldLower := strings.ToLower(field.Name)

	for i := range columns {
		column := &columns[i]
		columnLower := strings.ToLower(column.Name)

		nameScore := Similarity(fieldLower, columnLower)
		boost := lex.Boost(fieldLower, columnLower)

		candidates = append(candidates, Candidate{
			Column:     column,
			Index:      i,
			NameScore:  nameScore,
			Boost:      boost,
			Total:      nameScore + boost,
			Affinity:   ScoreTypeAffinity(field.Type, column.Type),
			FieldName:  fieldLower,
			ColumnName: columnLower,
		})
	}

	sort.Stable(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by total score descending, then by column position.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Total != c[j].Total {
		return c[i].Total > c[j].Total
	}
	return c[i].Index < c[j].Index
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}
	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// AboveThreshold returns candidates whose total is strictly above threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Total > threshold {
			result = append(result, cand)
		}
	}
	return result
}

// Accepted reports whether the best candidate clears threshold.
// Returns nil when no candidate does.
func (c CandidateList) Accepted(threshold float64) *Candidate {
	best := c.Best()
	if best == nil || best.Total <= threshold {
		return nil
	}
	return best
}

// DefaultThreshold is the total score a fuzzy candidate must exceed.
const DefaultThreshold = 0.6
