// Package pipeline orchestrates a single query: classify the question,
// compute the grounding statistic, compose the prompt and fetch the
// model answer.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobmarket-insights/internal/dataset"
	"github.com/jonathan/jobmarket-insights/internal/insights"
	"github.com/jonathan/jobmarket-insights/internal/intent"
	"github.com/jonathan/jobmarket-insights/internal/prompts"
)

// promptFile holds the per-intent answer templates.
const promptFile = "answers.json"

// QueryContext is the transient state of one question: what was
// detected, what was computed and the prompt handed to the model. It is
// built per request and discarded once the answer is produced.
type QueryContext struct {
	Question  string
	Intent    intent.Intent
	Level     string
	Role      string
	Statistic string
	Prompt    string
}

// BuildContext classifies the question, computes the statistic for the
// detected intent over ds and composes the model prompt. Absent role or
// level filters degrade to the whole dataset; the only error source is a
// missing prompt template.
func BuildContext(ds *dataset.Dataset, question string) (*QueryContext, error) {
	qc := &QueryContext{
		Question: question,
		Intent:   intent.Classify(question),
		Level:    intent.DetectLevel(question),
		Role:     intent.DetectRole(question),
	}

	templateKey := string(qc.Intent)
	switch qc.Intent {
	case intent.Salary:
		qc.Statistic = insights.AverageSalary(ds, qc.Level, qc.Role)

	case intent.SkillsOverlap:
		first, second, ok := intent.ParseOverlapClause(question)
		if !ok || first.Role == "" || second.Role == "" {
			templateKey = "skills_overlap_clarify"
			break
		}
		qc.Statistic = insights.SkillsOverlap(ds, first.Role, first.Level, second.Role, second.Level)

	case intent.SkillsTools:
		skills, tools := insights.TopSkillsTools(ds, qc.Level, qc.Role)
		qc.Statistic = fmt.Sprintf("Top skills: %s; top tools: %s",
			strings.Join(skills, ", "), strings.Join(tools, ", "))

	case intent.Industry:
		qc.Statistic = insights.IndustryDistribution(ds)
	}

	tmpl, err := prompts.Get(promptFile, templateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}
	qc.Prompt = prompts.Format(tmpl, map[string]string{
		"Statistic": qc.Statistic,
		"Question":  qc.Question,
	})

	return qc, nil
}
