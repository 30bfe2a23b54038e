package dataset

import (
	"strings"
	"unicode"
)

// Filter returns the records whose field contains keyword under a
// case-, whitespace- and plural-insensitive containment test. An empty
// keyword returns all records unchanged. Records with an empty value in
// field never match.
//
// The dataset's free-text fields are inconsistently spaced, cased and
// pluralized, so the keyword is expanded into four normalized variants
// and a record matches when its de-spaced, lowercased field value
// contains any of them.
func Filter(records []Record, field Field, keyword string) []Record {
	if keyword == "" {
		return records
	}

	variants := keywordVariants(keyword)

	var out []Record
	for _, rec := range records {
		value := rec.Get(field)
		if value == "" {
			continue
		}
		normalized := stripWhitespace(strings.ToLower(value))
		for _, v := range variants {
			if strings.Contains(normalized, v) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// FilterLevel narrows records to those whose experience_level contains
// level, case-insensitively. An empty level returns all records.
func FilterLevel(records []Record, level string) []Record {
	return FilterContains(records, FieldExperienceLevel, level)
}

// FilterContains narrows records by a direct case-insensitive substring
// match on field, with whitespace preserved. Used where the query terms
// are already normalized phrases.
func FilterContains(records []Record, field Field, substr string) []Record {
	if substr == "" {
		return records
	}
	needle := strings.ToLower(substr)

	var out []Record
	for _, rec := range records {
		value := rec.Get(field)
		if value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// keywordVariants builds the four alternative forms of a keyword:
// de-spaced with one trailing "s" removed, de-spaced as-is, lowercased
// as-is, and lowercased with trailing "s" runs stripped.
func keywordVariants(keyword string) []string {
	lower := strings.ToLower(keyword)
	despaced := stripWhitespace(lower)
	return []string{
		strings.TrimSuffix(despaced, "s"),
		despaced,
		lower,
		strings.TrimRight(lower, "s"),
	}
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
