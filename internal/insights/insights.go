// Package insights computes the deterministic statistics that ground
// model answers: skill and tool frequencies, salary averages, industry
// distribution and skill-set overlap between cohorts.
package insights

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/jobmarket-insights/internal/dataset"
)

// topN is the number of skills and tools reported per cohort.
const topN = 10

// NoSalaryData is returned when a cohort has no parsable salary values.
const NoSalaryData = "No salary data found for this query."

// cohort filters the dataset by role keyword on job_title and, when a
// level is given, by substring match on experience_level. Empty filters
// degrade to the full dataset.
func cohort(ds *dataset.Dataset, level, role string) []dataset.Record {
	records := dataset.Filter(ds.Records(), dataset.FieldJobTitle, role)
	if level != "" {
		records = dataset.FilterLevel(records, level)
	}
	return records
}

// TopSkillsTools returns the ten most frequent skills and tools across
// the cohort selected by level and role. Frequency ties keep
// first-encountered order. Both slices may be empty for an empty cohort.
func TopSkillsTools(ds *dataset.Dataset, level, role string) (skills, tools []string) {
	records := cohort(ds, level, role)
	log.Printf("skills/tools: %d rows for role %q level %q", len(records), role, level)

	skills = topTerms(records, dataset.FieldSkillsRequired)
	tools = topTerms(records, dataset.FieldToolsPreferred)
	log.Printf("top skills: %v", skills)
	log.Printf("top tools: %v", tools)
	return skills, tools
}

// AverageSalary returns the formatted mean salary bounds of the cohort
// selected by level and role, or NoSalaryData when the cohort is empty
// or carries no parsable salary ranges. Means are truncated to integers.
func AverageSalary(ds *dataset.Dataset, level, role string) string {
	records := cohort(ds, level, role)
	log.Printf("salary: %d rows for role %q level %q", len(records), role, level)

	var sumMin, sumMax, nMin, nMax int
	for _, rec := range records {
		if rec.SalaryMin != nil {
			sumMin += *rec.SalaryMin
			nMin++
		}
		if rec.SalaryMax != nil {
			sumMax += *rec.SalaryMax
			nMax++
		}
	}
	if nMin == 0 || nMax == 0 {
		return NoSalaryData
	}

	avgMin := int(float64(sumMin) / float64(nMin))
	avgMax := int(float64(sumMax) / float64(nMax))
	return fmt.Sprintf("Average salary for %s (%s): $%d-$%d USD",
		orAll(role, "all roles"), orAll(level, "all levels"), avgMin, avgMax)
}

// IndustryDistribution returns the five most common industries over the
// whole dataset as "name: count" pairs, descending by count. It is never
// narrowed by role or level.
func IndustryDistribution(ds *dataset.Dataset) string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range ds.Records() {
		if rec.Industry == "" {
			continue
		}
		if counts[rec.Industry] == 0 {
			order = append(order, rec.Industry)
		}
		counts[rec.Industry]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	pairs := make([]string, 0, len(order))
	for _, industry := range order {
		pairs = append(pairs, fmt.Sprintf("%s: %d", industry, counts[industry]))
	}
	summary := strings.Join(pairs, ", ")
	log.Printf("industry distribution: %s", summary)
	return summary
}

// SkillsOverlap intersects the skill sets of two cohorts selected by
// direct substring match on job_title and experience_level. The
// intersection is reported sorted lexicographically; empty intersections
// yield an explicit no-overlap message.
func SkillsOverlap(ds *dataset.Dataset, role1, level1, role2, level2 string) string {
	set1 := skillSet(ds, role1, level1)
	set2 := skillSet(ds, role2, level2)

	var overlap []string
	for skill := range set1 {
		if set2[skill] {
			overlap = append(overlap, skill)
		}
	}
	sort.Strings(overlap)
	log.Printf("skills overlap between %q/%q and %q/%q: %v", level1, role1, level2, role2, overlap)

	joined := "No overlap found."
	if len(overlap) > 0 {
		joined = strings.Join(overlap, ", ")
	}
	return fmt.Sprintf("Skills overlapping between %s %s and %s %s: %s",
		level1, role1, level2, role2, joined)
}

// skillSet collects the set of skill terms across a substring-filtered cohort.
func skillSet(ds *dataset.Dataset, role, level string) map[string]bool {
	records := dataset.FilterContains(ds.Records(), dataset.FieldJobTitle, role)
	records = dataset.FilterContains(records, dataset.FieldExperienceLevel, level)

	set := make(map[string]bool)
	for _, rec := range records {
		if rec.SkillsRequired == "" {
			continue
		}
		for _, skill := range strings.Split(rec.SkillsRequired, ", ") {
			set[skill] = true
		}
	}
	return set
}

// topTerms counts comma-separated terms in field across records and
// returns the topN most frequent, ties in first-encountered order.
func topTerms(records []dataset.Record, field dataset.Field) []string {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		value := rec.Get(field)
		if value == "" {
			continue
		}
		for _, term := range strings.Split(value, ", ") {
			if counts[term] == 0 {
				order = append(order, term)
			}
			counts[term]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}
	return order
}

func orAll(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
