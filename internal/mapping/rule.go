package mapping

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Rule -linecomment -output=rule_string.go

// Rule is a value-transformation rule kind. The zero value is RuleDirectMap.
type Rule int

const (
	RuleDirectMap  Rule = iota // Direct Map
	RuleSmartMap               // Smart Map
	RuleMasking                // Masking
	RuleUppercase              // Uppercase
	RuleDateFormat             // Date Format
	RuleLookup                 // Lookup

	// RuleTotal is the number of rule kinds.
	RuleTotal = int(iota)
)

// ErrUnknownRule is returned when a rule name matches no rule kind.
var ErrUnknownRule = errors.New("unknown rule")

// Rules returns every rule kind in declaration order.
func Rules() []Rule {
	rules := make([]Rule, RuleTotal)
	for i := range rules {
		rules[i] = Rule(i)
	}

	return rules
}

// Valid reports whether r is a declared rule kind.
func (r Rule) Valid() bool {
	return r >= 0 && int(r) < RuleTotal
}

// ParseRule resolves a rule by display name or compact spelling,
// ignoring case, spaces, underscores and dashes.
func ParseRule(s string) (Rule, error) {
	key := compactRuleName(s)
	for _, r := range Rules() {
		if compactRuleName(r.String()) == key {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownRule, s)
}

func compactRuleName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownRule, int(r))
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// An empty value decodes to RuleDirectMap.
func (r *Rule) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RuleDirectMap
		return nil
	}

	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}

	*r = parsed

	return nil
}
