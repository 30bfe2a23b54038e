// Package dataset provides loading, normalization and filtering of the
// AI job market records that back every query.
package dataset

import (
	"strconv"
	"strings"
)

// Field names a filterable column of a job record.
type Field string

// Filterable record fields.
const (
	FieldJobTitle        Field = "job_title"
	FieldExperienceLevel Field = "experience_level"
	FieldSkillsRequired  Field = "skills_required"
	FieldToolsPreferred  Field = "tools_preferred"
	FieldIndustry        Field = "industry"
)

// Record is a single job market row. SalaryMin and SalaryMax are derived
// from SalaryRange at load time; both are nil when the range does not parse.
type Record struct {
	JobTitle        string
	ExperienceLevel string
	SkillsRequired  string
	ToolsPreferred  string
	Industry        string
	SalaryRange     string

	SalaryMin *int
	SalaryMax *int
}

// Get returns the value of a filterable field. Unknown fields yield "".
func (r Record) Get(field Field) string {
	switch field {
	case FieldJobTitle:
		return r.JobTitle
	case FieldExperienceLevel:
		return r.ExperienceLevel
	case FieldSkillsRequired:
		return r.SkillsRequired
	case FieldToolsPreferred:
		return r.ToolsPreferred
	case FieldIndustry:
		return r.Industry
	default:
		return ""
	}
}

// ParseSalaryRange parses a "<min> - <max>" salary string into its numeric
// bounds. Whitespace around the dash is tolerated. Any malformed input
// yields (nil, nil) rather than an error; callers treat the salary as
// absent for that record.
func ParseSalaryRange(s string) (*int, *int) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return nil, nil
	}
	minVal, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil
	}
	maxVal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, nil
	}
	return &minVal, &maxVal
}
