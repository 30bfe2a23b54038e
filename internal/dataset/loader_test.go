package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalaryRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMin int
		wantMax int
		wantOK  bool
	}{
		{"plain", "50000 - 70000", 50000, 70000, true},
		{"no spaces", "50000-70000", 50000, 70000, true},
		{"extra whitespace", "  60000   -   80000 ", 60000, 80000, true},
		{"not a range", "NaN", 0, 0, false},
		{"missing max", "50000 -", 0, 0, false},
		{"non-numeric min", "fifty - 70000", 0, 0, false},
		{"empty", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, maxVal := ParseSalaryRange(tt.input)
			if !tt.wantOK {
				assert.Nil(t, minVal)
				assert.Nil(t, maxVal)
				return
			}
			require.NotNil(t, minVal)
			require.NotNil(t, maxVal)
			assert.Equal(t, tt.wantMin, *minVal)
			assert.Equal(t, tt.wantMax, *maxVal)
		})
	}
}

func TestLoadReader(t *testing.T) {
	csvData := `job_title,experience_level,skills_required,tools_preferred,industry,salary_range_usd,extra_column
Data Analyst,Entry,"SQL, Python","Tableau, Excel",Finance,50000 - 70000,ignored
ML Engineer,Senior,"Python, PyTorch","Docker, Kubernetes",Tech,NaN,ignored
`
	ds, err := LoadReader(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	first := ds.Records()[0]
	assert.Equal(t, "Data Analyst", first.JobTitle)
	assert.Equal(t, "Entry", first.ExperienceLevel)
	assert.Equal(t, "SQL, Python", first.SkillsRequired)
	assert.Equal(t, "Finance", first.Industry)
	require.NotNil(t, first.SalaryMin)
	assert.Equal(t, 50000, *first.SalaryMin)
	require.NotNil(t, first.SalaryMax)
	assert.Equal(t, 70000, *first.SalaryMax)

	// Unparsable salary keeps the raw field but yields nil bounds
	second := ds.Records()[1]
	assert.Equal(t, "NaN", second.SalaryRange)
	assert.Nil(t, second.SalaryMin)
	assert.Nil(t, second.SalaryMax)
}

func TestLoadReader_MissingColumn(t *testing.T) {
	csvData := `job_title,experience_level,skills_required,tools_preferred,industry
Data Analyst,Entry,SQL,Tableau,Finance
`
	_, err := LoadReader(strings.NewReader(csvData))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "salary_range_usd")
}

func TestLoadReader_EmptyHeaderOnly(t *testing.T) {
	csvData := "job_title,experience_level,skills_required,tools_preferred,industry,salary_range_usd\n"
	ds, err := LoadReader(strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("does/not/exist.csv")
	require.Error(t, err)
}
