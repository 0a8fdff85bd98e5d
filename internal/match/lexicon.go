package match

import "strings"

// BoostIncrement is added to a candidate score for every lexicon group
// shared by a field name and a column name.
const BoostIncrement = 0.3

// Group is one canonical concept and the surface forms it is known by.
type Group struct {
	Key      string
	Variants []string
}

// Lexicon is an ordered table of semantic variation groups.
// A Lexicon is read-only after construction.
type Lexicon struct {
	groups []Group
}

// NewLexicon builds a lexicon from the given groups. Keys and variants are
// matched by substring against lower-cased names, so they should be lower case.
func NewLexicon(groups ...Group) *Lexicon {
	l := &Lexicon{groups: make([]Group, len(groups))}
	for i, g := range groups {
		l.groups[i] = Group{
			Key:      g.Key,
			Variants: append([]string(nil), g.Variants...),
		}
	}

	return l
}

var defaultLexicon = NewLexicon(
	Group{Key: "id", Variants: []string{"_id", "id", "uuid", "guid"}},
	Group{Key: "name", Variants: []string{"name", "title", "label", "fullname"}},
	Group{Key: "code", Variants: []string{"code", "key", "no", "num"}},
	Group{Key: "desc", Variants: []string{"description", "desc", "remark", "content"}},
	Group{Key: "user", Variants: []string{"user", "account", "creator", "modifier"}},
	Group{Key: "time", Variants: []string{"time", "date", "at", "on"}},
)

// DefaultLexicon returns the built-in lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// Keys returns the canonical keys in table order.
func (l *Lexicon) Keys() []string {
	keys := make([]string, len(l.groups))
	for i, g := range l.groups {
		keys[i] = g.Key
	}

	return keys
}

// Variants returns the surface forms registered for key.
func (l *Lexicon) Variants(key string) ([]string, bool) {
	for _, g := range l.groups {
		if g.Key == key {
			return append([]string(nil), g.Variants...), true
		}
	}

	return nil, false
}

// Boost returns the semantic variation bonus for a lower-cased field name
// and a lower-cased column name. Each group whose key occurs in the field
// name adds BoostIncrement when any of its variants occurs in the column
// name. Bonuses from several groups add up and are not capped.
func (l *Lexicon) Boost(fieldLower, columnLower string) float64 {
	var boost float64

	for _, g := range l.groups {
		if !strings.Contains(fieldLower, g.Key) {
			continue
		}

		for _, v := range g.Variants {
			if strings.Contains(columnLower, v) {
				boost += BoostIncrement

				break
			}
		}
	}

	return boost
}

// Boost applies the default lexicon.
func Boost(fieldLower, columnLower string) float64 {
	return defaultLexicon.Boost(fieldLower, columnLower)
}
