package plan

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"field-mapper/internal/mapping"
	"field-mapper/internal/match"
)

// AutoMapper proposes mappings for unmapped business fields.
// It holds no per-run state and is safe for concurrent use.
type AutoMapper struct {
	config  Config
	lexicon *match.Lexicon
	logger  zerolog.Logger
}

// Option configures an AutoMapper.
type Option func(*AutoMapper)

// WithLexicon replaces the default semantic variation lexicon.
func WithLexicon(lex *match.Lexicon) Option {
	return func(a *AutoMapper) {
		if lex != nil {
			a.lexicon = lex
		}
	}
}

// WithLogger sets the logger used for per-field decisions.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *AutoMapper) {
		a.logger = logger
	}
}

// NewAutoMapper creates a new AutoMapper.
func NewAutoMapper(config Config, opts ...Option) *AutoMapper {
	a := &AutoMapper{
		config:  config,
		lexicon: match.DefaultLexicon(),
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Config returns the mapper's configuration.
func (a *AutoMapper) Config() Config {
	return a.config
}

// Propose maps every field that has no entry in existing. Existing entries
// are kept as they are. Each field takes its own best column; two fields
// may end up on the same column.
func (a *AutoMapper) Propose(fields []mapping.Field, columns []mapping.Column, existing mapping.Set) *Result {
	result := &Result{}
	set := existing

	for _, field := range fields {
		if set.Has(field.Name) {
			continue
		}

		if column, ok := exactMatch(field, columns); ok {
			entry := mapping.Entry{
				BoField:  field.Name,
				TblField: column.Name,
				Rule:     mapping.RuleDirectMap,
			}
			set = set.Upsert(entry)

			result.Proposals = append(result.Proposals, Proposal{Field: field, Entry: entry, Exact: true})
			result.Diagnostics.AddInfo("exact_match", "column name equals field name or code", field.Name, column.Name)

			a.logger.Debug().
				Str("field", field.Name).
				Str("column", column.Name).
				Msg("exact match")

			continue
		}

		candidates := match.RankCandidates(field, columns, a.lexicon)

		best := candidates.Accepted(a.config.Threshold)
		if best == nil {
			a.addUnmapped(result, field, candidates)
			continue
		}

		rule := mapping.RuleSmartMap
		if best.Total >= 1.0 {
			rule = mapping.RuleDirectMap
		}

		entry := mapping.Entry{
			BoField:  field.Name,
			TblField: best.Column.Name,
			Rule:     rule,
			Score:    mapping.Scored(best.Total),
		}
		set = set.Upsert(entry)

		winner := *best
		result.Proposals = append(result.Proposals, Proposal{Field: field, Entry: entry, Candidate: &winner})
		result.Diagnostics.AddInfo("fuzzy_match",
			fmt.Sprintf("score %.3f (name %.3f, boost %.1f)", best.Total, best.NameScore, best.Boost),
			field.Name, best.Column.Name)

		if best.Affinity.Affinity == match.AffinityMismatch {
			result.Diagnostics.AddWarning("type_mismatch",
				fmt.Sprintf("field type %q does not fit column type %q", field.Type, best.Column.Type),
				field.Name, best.Column.Name)
		}

		a.logger.Debug().
			Str("field", field.Name).
			Str("column", best.Column.Name).
			Float64("score", best.Total).
			Stringer("rule", rule).
			Msg("fuzzy match accepted")
	}

	result.Mappings = set
	reportSharedColumns(result)

	return result
}

func (a *AutoMapper) addUnmapped(result *Result, field mapping.Field, candidates match.CandidateList) {
	var reason string

	if best := candidates.Best(); best != nil {
		reason = fmt.Sprintf("best match %q (%.2f) not above threshold %.2f",
			best.Column.Name, best.Total, a.config.Threshold)
	} else {
		reason = "no columns to match"
	}

	result.Unmapped = append(result.Unmapped, Unmapped{
		Field:      field,
		Candidates: candidates.Top(a.config.MaxCandidates),
		Reason:     reason,
	})
	result.Diagnostics.AddWarning("unmapped_field", reason, field.Name, "")

	a.logger.Debug().
		Str("field", field.Name).
		Str("reason", reason).
		Msg("field left unmapped")
}

// reportSharedColumns notes every proposed column that another entry also uses.
func reportSharedColumns(result *Result) {
	entries := result.Mappings.Entries()

	for _, p := range result.Proposals {
		for _, e := range entries {
			if e.BoField == p.Entry.BoField || e.TblField != p.Entry.TblField {
				continue
			}

			result.Diagnostics.AddWarning("shared_column",
				fmt.Sprintf("column is also mapped by %q", e.BoField),
				p.Entry.BoField, p.Entry.TblField)
		}
	}
}

// exactMatch returns the first column whose lower-cased name equals the
// field's lower-cased name or code.
func exactMatch(field mapping.Field, columns []mapping.Column) (mapping.Column, bool) {
	name := strings.ToLower(field.Name)
	code := strings.ToLower(field.CodeOrName())

	for _, c := range columns {
		lower := strings.ToLower(c.Name)
		if lower == name || lower == code {
			return c, true
		}
	}

	return mapping.Column{}, false
}

var defaultAutoMapper = NewAutoMapper(DefaultConfig())

// ProposeMappings runs the default auto-mapper and returns the merged set.
func ProposeMappings(fields []mapping.Field, columns []mapping.Column, existing mapping.Set) mapping.Set {
	return defaultAutoMapper.Propose(fields, columns, existing).Mappings
}

// Seed builds the initial set for a business object opened against one
// source table: every field whose name or code equals a column name is
// mapped directly, the rest are left unmapped.
func Seed(fields []mapping.Field, columns []mapping.Column) mapping.Set {
	var set mapping.Set

	for _, field := range fields {
		if set.Has(field.Name) {
			continue
		}

		if column, ok := exactMatch(field, columns); ok {
			set = set.SetMapping(field.Name, column.Name)
		}
	}

	return set
}
