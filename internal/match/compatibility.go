package match

import (
	"strings"
)

// TypeAffinity represents how well a business field's type tag fits a
// column's physical type.
type TypeAffinity int

const (
	// AffinityUnknown means one of the types could not be classified.
	AffinityUnknown TypeAffinity = iota
	// AffinityMismatch means the types belong to unrelated families.
	AffinityMismatch
	// AffinityConvertible means values can be carried over with a conversion.
	AffinityConvertible
	// AffinityIdentical means both types belong to the same family.
	AffinityIdentical
)

const (
	VerdictUnknown     = "unknown"
	VerdictMismatch    = "mismatch"
	VerdictConvertible = "convertible"
	VerdictIdentical   = "identical"
)

// String returns a human-readable name for the affinity level.
func (a TypeAffinity) String() string {
	switch a {
	case AffinityIdentical:
		return VerdictIdentical
	case AffinityConvertible:
		return VerdictConvertible
	case AffinityMismatch:
		return VerdictMismatch
	default:
		return VerdictUnknown
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a TypeAffinity) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// TypeFamily groups type names that hold the same kind of value.
type TypeFamily string

const (
	FamilyNone     TypeFamily = ""
	FamilyString   TypeFamily = "string"
	FamilyInteger  TypeFamily = "integer"
	FamilyDecimal  TypeFamily = "decimal"
	FamilyBoolean  TypeFamily = "boolean"
	FamilyDateTime TypeFamily = "datetime"
)

// familyMarkers are checked in order against a lower-cased type name;
// the first marker found wins.
var familyMarkers = []struct {
	marker string
	family TypeFamily
}{
	{"timestamp", FamilyDateTime},
	{"datetime", FamilyDateTime},
	{"date", FamilyDateTime},
	{"time", FamilyDateTime},
	{"bool", FamilyBoolean},
	{"bit", FamilyBoolean},
	{"decimal", FamilyDecimal},
	{"numeric", FamilyDecimal},
	{"double", FamilyDecimal},
	{"float", FamilyDecimal},
	{"real", FamilyDecimal},
	{"money", FamilyDecimal},
	{"int", FamilyInteger},
	{"long", FamilyInteger},
	{"serial", FamilyInteger},
	{"char", FamilyString},
	{"text", FamilyString},
	{"string", FamilyString},
	{"clob", FamilyString},
	{"json", FamilyString},
	{"uuid", FamilyString},
	{"enum", FamilyString},
}

// ClassifyType returns the family of a semantic tag ("String", "Integer")
// or a physical type ("varchar(32)", "bigint unsigned").
func ClassifyType(typeName string) TypeFamily {
	lower := strings.ToLower(strings.TrimSpace(typeName))
	if lower == "" {
		return FamilyNone
	}

	for _, m := range familyMarkers {
		if strings.Contains(lower, m.marker) {
			return m.family
		}
	}

	return FamilyNone
}

// TypeAffinityResult contains detailed information about type affinity.
type TypeAffinityResult struct {
	Affinity     TypeAffinity `json:"affinity"`
	Reason       string       `json:"reason"`
	FieldFamily  TypeFamily   `json:"fieldFamily,omitempty"`
	ColumnFamily TypeFamily   `json:"columnFamily,omitempty"`
}

// ScoreTypeAffinity compares a field type tag with a column type.
func ScoreTypeAffinity(fieldType, columnType string) TypeAffinityResult {
	ff := ClassifyType(fieldType)
	cf := ClassifyType(columnType)

	result := TypeAffinityResult{FieldFamily: ff, ColumnFamily: cf}

	switch {
	case ff == FamilyNone || cf == FamilyNone:
		result.Affinity = AffinityUnknown
		result.Reason = "type information unavailable"
	case ff == cf:
		result.Affinity = AffinityIdentical
		result.Reason = "types are in the same family"
	case isConvertible(ff, cf):
		result.Affinity = AffinityConvertible
		result.Reason = "column values convert to the field type"
	default:
		result.Affinity = AffinityMismatch
		result.Reason = "types are not compatible"
	}

	return result
}

func isConvertible(field, column TypeFamily) bool {
	if field == FamilyString {
		return true
	}

	numeric := func(f TypeFamily) bool { return f == FamilyInteger || f == FamilyDecimal }

	return numeric(field) && numeric(column)
}
