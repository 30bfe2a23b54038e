package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// requiredColumns is the column set every dataset file must carry.
// Any additional columns are ignored.
var requiredColumns = []string{
	"job_title",
	"experience_level",
	"skills_required",
	"tools_preferred",
	"industry",
	"salary_range_usd",
}

// Dataset is the immutable collection of job records loaded at startup.
// It is shared read-only across all queries; no component mutates it.
type Dataset struct {
	records []Record
}

// Records returns the loaded records. The returned slice is shared and
// must be treated as read-only.
func (d *Dataset) Records() []Record {
	return d.records
}

// Len returns the number of records in the dataset.
func (d *Dataset) Len() int {
	return len(d.records)
}

// New builds a dataset from pre-constructed records. Intended for tests
// that need synthetic data without a CSV file.
func New(records []Record) *Dataset {
	return &Dataset{records: records}
}

// Load reads the dataset CSV at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ds, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset %s: %w", path, err)
	}
	return ds, nil
}

// LoadReader reads dataset CSV content from r. The first row must be a
// header containing at least the required columns. Salary bounds are
// derived per record; rows with unparsable salary ranges keep nil bounds
// and are never rejected.
func LoadReader(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", col)
		}
	}

	cell := func(row []string, col string) string {
		i := index[col]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		rec := Record{
			JobTitle:        cell(row, "job_title"),
			ExperienceLevel: cell(row, "experience_level"),
			SkillsRequired:  cell(row, "skills_required"),
			ToolsPreferred:  cell(row, "tools_preferred"),
			Industry:        cell(row, "industry"),
			SalaryRange:     cell(row, "salary_range_usd"),
		}
		rec.SalaryMin, rec.SalaryMax = ParseSalaryRange(rec.SalaryRange)
		records = append(records, rec)
	}

	return &Dataset{records: records}, nil
}
