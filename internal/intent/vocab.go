package intent

import "strings"

// Levels is the closed experience-level vocabulary, in dataset order.
var Levels = []string{"entry", "junior", "middle", "senior", "lead"}

// Roles is the closed vocabulary of known role phrases, ordered longest
// first so that a more specific phrase is never shadowed by a shorter
// one it contains.
var Roles = []string{
	"machine learning engineer",
	"computer vision engineer",
	"ai product manager",
	"quant researcher",
	"data scientist",
	"ai researcher",
	"data analyst",
	"nlp engineer",
	"ml engineer",
	"ai engineer",
}

// DetectLevel returns the first question token that is a known
// experience level, scanning left to right, or "" when none is present.
func DetectLevel(question string) string {
	for _, tok := range strings.Fields(strings.ToLower(question)) {
		tok = strings.Trim(tok, ".,;:!?\"'")
		if isLevel(tok) {
			return tok
		}
	}
	return ""
}

// DetectRole returns the first known role phrase contained in the
// question, trying longer phrases before shorter ones, or "" when none
// is present.
func DetectRole(question string) string {
	lower := strings.ToLower(question)
	for _, role := range Roles {
		if strings.Contains(lower, role) {
			return role
		}
	}
	return ""
}

func isLevel(tok string) bool {
	for _, l := range Levels {
		if tok == l {
			return true
		}
	}
	return false
}
