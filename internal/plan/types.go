package plan

import (
	"field-mapper/internal/diagnostic"
	"field-mapper/internal/mapping"
	"field-mapper/internal/match"
)

// Config holds configuration for the proposal process.
type Config struct {
	// Threshold is the total score a fuzzy candidate must exceed.
	Threshold float64
	// MaxCandidates is the maximum number of candidates kept on an unmapped field.
	MaxCandidates int
}

// DefaultConfig returns the default proposal configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:     match.DefaultThreshold,
		MaxCandidates: 3,
	}
}

// Result is the output of one proposal run.
type Result struct {
	// Mappings is the caller's set with the new proposals merged in.
	Mappings mapping.Set
	// Proposals lists the entries created by this run, in field order.
	Proposals []Proposal
	// Unmapped lists the fields left without an entry.
	Unmapped []Unmapped
	// Diagnostics explains the decisions.
	Diagnostics diagnostic.Diagnostics
}

// Proposal is one entry created by the auto-mapper.
type Proposal struct {
	Field mapping.Field
	Entry mapping.Entry
	// Exact is true when the column was found by name or code equality.
	Exact bool
	// Candidate is the winning fuzzy candidate. Nil for exact matches.
	Candidate *match.Candidate
}

// Unmapped is a field the auto-mapper could not place.
type Unmapped struct {
	Field mapping.Field
	// Candidates are the best rejected columns, highest first.
	Candidates match.CandidateList
	Reason     string
}
