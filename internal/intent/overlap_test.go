package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverlapClause(t *testing.T) {
	first, second, ok := ParseOverlapClause(
		"What skills overlap between entry NLP Engineer and middle AI Product Manager?")
	require.True(t, ok)
	assert.Equal(t, Cohort{Role: "nlp engineer", Level: "entry"}, first)
	assert.Equal(t, Cohort{Role: "ai product manager", Level: "middle"}, second)
}

func TestParseOverlapClause_NoClause(t *testing.T) {
	_, _, ok := ParseOverlapClause("What skills overlap the most?")
	assert.False(t, ok)
}

func TestParseOverlapClause_LevelOnlyPhrase(t *testing.T) {
	// a level-only phrase yields an empty role, not a guess
	first, second, ok := ParseOverlapClause("skills overlap between senior and entry data analyst")
	require.True(t, ok)
	assert.Equal(t, Cohort{Role: "", Level: "senior"}, first)
	assert.Equal(t, Cohort{Role: "data analyst", Level: "entry"}, second)
}

func TestSplitRoleAndLevel(t *testing.T) {
	tests := []struct {
		phrase string
		want   Cohort
	}{
		{"entry nlp engineer", Cohort{Role: "nlp engineer", Level: "entry"}},
		{"data scientist", Cohort{Role: "data scientist", Level: ""}},
		{"senior", Cohort{Role: "", Level: "senior"}},
		{"Middle AI Product Manager", Cohort{Role: "ai product manager", Level: "middle"}},
		{"", Cohort{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitRoleAndLevel(tt.phrase), "phrase %q", tt.phrase)
	}
}
