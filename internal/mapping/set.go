package mapping

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Set is an ordered collection of entries keyed by Entry.BoField.
//
// A Set holds at most one entry per business field. Writing an entry for a
// field that is already present replaces it in place. Two fields may map to
// the same column.
//
// Set methods never modify the receiver. The zero value is an empty set.
type Set struct {
	entries []Entry
}

// NewSet builds a set from entries. A later entry for the same business
// field replaces an earlier one.
func NewSet(entries ...Entry) Set {
	return Set{}.Merge(entries...)
}

// Len returns the number of entries.
func (s Set) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in order.
func (s Set) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}

	return out
}

// Get returns the entry for boField.
func (s Set) Get(boField string) (Entry, bool) {
	if i := s.index(boField); i >= 0 {
		return s.entries[i].clone(), true
	}

	return Entry{}, false
}

// Has reports whether boField has an entry.
func (s Set) Has(boField string) bool {
	return s.index(boField) >= 0
}

// Upsert returns a set with e inserted, or replacing the entry for e.BoField.
func (s Set) Upsert(e Entry) Set {
	return s.Merge(e)
}

// Merge upserts every entry in order.
func (s Set) Merge(entries ...Entry) Set {
	out := Set{entries: make([]Entry, len(s.entries), len(s.entries)+len(entries))}
	copy(out.entries, s.entries)

	for _, e := range entries {
		e = e.clone()
		if i := out.index(e.BoField); i >= 0 {
			out.entries[i] = e
			continue
		}

		out.entries = append(out.entries, e)
	}

	return out
}

// SetMapping returns a set where boField maps to tblField with RuleDirectMap
// and no score. Any previous rule or score for boField is discarded.
func (s Set) SetMapping(boField, tblField string) Set {
	return s.Upsert(Entry{
		BoField:  boField,
		TblField: tblField,
		Rule:     RuleDirectMap,
	})
}

// WithRule returns a set where the entry for boField uses rule. The column
// and score are kept. It returns the receiver and false when boField has
// no entry.
func (s Set) WithRule(boField string, rule Rule) (Set, bool) {
	e, ok := s.Get(boField)
	if !ok {
		return s, false
	}

	e.Rule = rule

	return s.Upsert(e), true
}

// Remove returns a set without the entry for boField.
func (s Set) Remove(boField string) Set {
	i := s.index(boField)
	if i < 0 {
		return s
	}

	out := Set{entries: make([]Entry, 0, len(s.entries)-1)}
	out.entries = append(out.entries, s.entries[:i]...)
	out.entries = append(out.entries, s.entries[i+1:]...)

	return out
}

func (s Set) index(boField string) int {
	for i := range s.entries {
		if s.entries[i].BoField == boField {
			return i
		}
	}

	return -1
}

// MarshalJSON encodes the set as a list of entries.
func (s Set) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.entries)
}

// UnmarshalJSON decodes a list of entries.
func (s *Set) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	*s = NewSet(entries...)

	return nil
}

// MarshalYAML encodes the set as a list of entries.
func (s Set) MarshalYAML() (any, error) {
	if s.entries == nil {
		return []Entry{}, nil
	}

	return s.entries, nil
}

// UnmarshalYAML decodes a list of entries.
func (s *Set) UnmarshalYAML(node *yaml.Node) error {
	var entries []Entry
	if err := node.Decode(&entries); err != nil {
		return err
	}

	*s = NewSet(entries...)

	return nil
}
