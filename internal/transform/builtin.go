package transform

import (
	"regexp"
	"strings"

	"field-mapper/internal/mapping"
)

// builtins are copied into every new registry. RuleLookup has no
// transformation yet and stays identity until one is registered.
var builtins = map[mapping.Rule]Func{
	mapping.RuleDirectMap:  identity,
	mapping.RuleSmartMap:   identity,
	mapping.RuleUppercase:  strings.ToUpper,
	mapping.RuleDateFormat: DateOnly,
	mapping.RuleMasking:    Mask,
	mapping.RuleLookup:     identity,
}

func identity(s string) string { return s }

// DateOnly returns the text before the first space.
//
//	"2023-10-01 12:00:00" -> "2023-10-01"
func DateOnly(s string) string {
	date, _, _ := strings.Cut(s, " ")
	return date
}

// reDigits matches 3 leading digits, at least one middle digit and 4 trailing digits.
var reDigits = regexp.MustCompile(`^(\d{3})\d+(\d{4})$`)

// Mask hides the middle of an email local part or a digit string.
//
//	"zhang@test.com" -> "zh***@test.com"
//	"13812345678"    -> "138****5678"
//
// Values matching neither shape are returned unchanged.
func Mask(s string) string {
	if local, domain, ok := strings.Cut(s, "@"); ok {
		return firstRunes(local, 2) + "***@" + domain
	}

	if m := reDigits.FindStringSubmatch(s); m != nil {
		return m[1] + "****" + m[2]
	}

	return s
}

func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}
