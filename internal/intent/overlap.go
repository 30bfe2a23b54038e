package intent

import (
	"regexp"
	"strings"
)

// betweenClause captures the two cohort phrases of a skills-overlap
// question, e.g. "between entry NLP Engineer and middle AI Product Manager".
var betweenClause = regexp.MustCompile(`between ([\w\s]+) and ([\w\s]+)`)

// Cohort is one side of a skills-overlap comparison. Role is "" when the
// phrase named only a level ("senior") or nothing recognizable; callers
// must treat that as role-not-specified rather than guessing.
type Cohort struct {
	Role  string
	Level string
}

// ParseOverlapClause extracts the two cohorts from a skills-overlap
// question. ok is false when the question has no parsable
// "between X and Y" clause.
func ParseOverlapClause(question string) (first, second Cohort, ok bool) {
	m := betweenClause.FindStringSubmatch(strings.ToLower(question))
	if m == nil {
		return Cohort{}, Cohort{}, false
	}
	return splitRoleAndLevel(strings.TrimSpace(m[1])), splitRoleAndLevel(strings.TrimSpace(m[2])), true
}

// splitRoleAndLevel separates a cohort phrase into its level token and
// the remaining role text. The level is the first vocabulary level
// present among the tokens; every level token is removed from the role.
func splitRoleAndLevel(phrase string) Cohort {
	tokens := strings.Fields(strings.ToLower(phrase))

	level := ""
	for _, l := range Levels {
		if containsToken(tokens, l) {
			level = l
			break
		}
	}

	var roleTokens []string
	for _, tok := range tokens {
		if !isLevel(tok) {
			roleTokens = append(roleTokens, tok)
		}
	}

	return Cohort{Role: strings.Join(roleTokens, " "), Level: level}
}

func containsToken(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}
