package plan

import "field-mapper/internal/mapping"

// Explanations for confidence tiers, highest first.
const (
	ExplainNearExact = "near-exact name match, very high confidence"
	ExplainHigh      = "high semantic similarity, consistent sampled type"
	ExplainSuggested = "AI-suggested match, recommend manual confirmation"
	ExplainVerify    = "AI-recommended mapping, please verify sampled values"
)

// Explain turns a confidence score into a tiered justification.
func Explain(score float64) string {
	switch {
	case score >= 0.95:
		return ExplainNearExact
	case score >= 0.8:
		return ExplainHigh
	case score >= 0.6:
		return ExplainSuggested
	default:
		return ExplainVerify
	}
}

// ExplainEntry explains a scored entry. It returns false for entries
// without a score.
func ExplainEntry(e mapping.Entry) (string, bool) {
	if !e.HasScore() {
		return "", false
	}

	return Explain(*e.Score), true
}
