package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{JobTitle: "Data Analyst", ToolsPreferred: "Tableau, Excel"},
		{JobTitle: "DataAnalyst", ToolsPreferred: "Power BI"},
		{JobTitle: "ML Engineer", ToolsPreferred: "Docker"},
		{JobTitle: "NLP Engineer"},
	}
}

func TestFilter_EmptyKeywordReturnsAll(t *testing.T) {
	records := sampleRecords()
	assert.Equal(t, records, Filter(records, FieldJobTitle, ""))
}

func TestFilter_CaseAndWhitespaceInsensitive(t *testing.T) {
	records := sampleRecords()

	// "data analyst" matches both the spaced and the unspaced spelling
	got := Filter(records, FieldJobTitle, "data analyst")
	require.Len(t, got, 2)
	assert.Equal(t, "Data Analyst", got[0].JobTitle)
	assert.Equal(t, "DataAnalyst", got[1].JobTitle)

	// casing in the keyword is irrelevant
	assert.Equal(t, got, Filter(records, FieldJobTitle, "DATA ANALYST"))
}

func TestFilter_PluralInsensitive(t *testing.T) {
	records := []Record{{JobTitle: "x", ToolsPreferred: "Developer Tools"}}

	singular := Filter(records, FieldToolsPreferred, "tool")
	plural := Filter(records, FieldToolsPreferred, "tools")
	assert.Equal(t, singular, plural)
	assert.Len(t, singular, 1)
}

func TestFilter_NeverAddsRecords(t *testing.T) {
	records := sampleRecords()
	all := Filter(records, FieldJobTitle, "")

	for _, keyword := range []string{"data analyst", "engineer", "nonexistent", "a"} {
		got := Filter(records, FieldJobTitle, keyword)
		assert.LessOrEqual(t, len(got), len(all), "keyword %q", keyword)
		for _, rec := range got {
			assert.Contains(t, all, rec)
		}
	}
}

func TestFilter_MissingFieldNeverMatches(t *testing.T) {
	records := sampleRecords()

	// last record has no tools_preferred value; it must not match anything
	got := Filter(records, FieldToolsPreferred, "e")
	for _, rec := range got {
		assert.NotEqual(t, "NLP Engineer", rec.JobTitle)
	}
}

func TestFilter_NoMatches(t *testing.T) {
	got := Filter(sampleRecords(), FieldJobTitle, "quant researcher")
	assert.Empty(t, got)
}

func TestFilterLevel(t *testing.T) {
	records := []Record{
		{JobTitle: "a", ExperienceLevel: "Entry"},
		{JobTitle: "b", ExperienceLevel: "Senior"},
		{JobTitle: "c", ExperienceLevel: ""},
	}

	got := FilterLevel(records, "entry")
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].JobTitle)

	// empty level keeps everything
	assert.Equal(t, records, FilterLevel(records, ""))
}

func TestFilterContains(t *testing.T) {
	records := sampleRecords()

	got := FilterContains(records, FieldJobTitle, "engineer")
	require.Len(t, got, 2)

	// direct containment keeps whitespace significant
	assert.Empty(t, FilterContains(records, FieldJobTitle, "dataanalyst "))
}
