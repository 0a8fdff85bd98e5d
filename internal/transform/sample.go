package transform

import "strings"

// Representative sample values used to seed previews.
const (
	SampleInteger = "1001"
	SampleDate    = "2023-10-01 12:00:00"
	SamplePhone   = "13812345678"
	SampleEmail   = "zhang@test.com"
	SampleGeneric = "sample_data"
)

// SampleValue returns a representative value for a column type. The type
// is matched case-insensitively by substring, in priority order: int,
// date, phone, email.
func SampleValue(columnType string) string {
	t := strings.ToLower(columnType)

	switch {
	case strings.Contains(t, "int"):
		return SampleInteger
	case strings.Contains(t, "date"):
		return SampleDate
	case strings.Contains(t, "phone"):
		return SamplePhone
	case strings.Contains(t, "email"):
		return SampleEmail
	default:
		return SampleGeneric
	}
}
