// Package intent classifies free-form questions about the job market
// dataset and extracts the role and experience level they mention.
package intent

import "strings"

// Intent is the classified purpose of a user question.
type Intent string

// Supported intents.
const (
	Salary        Intent = "salary"
	SkillsOverlap Intent = "skills_overlap"
	SkillsTools   Intent = "skills_tools"
	Industry      Intent = "industry"
	Generic       Intent = "generic"
)

// rule pairs a predicate with the intent it selects.
type rule struct {
	matches func(string) bool
	intent  Intent
}

// rules is evaluated in order; the first match wins. The trigger terms
// are not mutually exclusive ("salary" questions may also mention
// "skills"), so the ordering is the tie-break policy.
var rules = []rule{
	{containsAny("salary", "pay", "earnings", "compensation"), Salary},
	{containsAny("skills overlap"), SkillsOverlap},
	{containsAny("skills", "tools", "requirements"), SkillsTools},
	{containsAny("industry"), Industry},
}

// Classify returns the intent of a question. Questions matching no rule
// are Generic and pass through to the model without a computed statistic.
func Classify(question string) Intent {
	lower := strings.ToLower(question)
	for _, r := range rules {
		if r.matches(lower) {
			return r.intent
		}
	}
	return Generic
}

func containsAny(terms ...string) func(string) bool {
	return func(lower string) bool {
		for _, term := range terms {
			if strings.Contains(lower, term) {
				return true
			}
		}
		return false
	}
}
