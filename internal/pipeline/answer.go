package pipeline

import (
	"context"
	"log"

	"github.com/jonathan/jobmarket-insights/internal/dataset"
	"github.com/jonathan/jobmarket-insights/internal/llm"
)

// FallbackAnswer is shown whenever the completion service fails. The
// failure itself is logged; it is never surfaced to the user.
const FallbackAnswer = "Failed to fetch answer from Gemini API."

// Answer runs the full pipeline for one question and returns the model's
// answer together with the query context used to produce it. Completion
// failures are converted to FallbackAnswer.
func Answer(ctx context.Context, ds *dataset.Dataset, client llm.Client, question string) (string, *QueryContext, error) {
	qc, err := BuildContext(ds, question)
	if err != nil {
		return "", nil, err
	}

	answer, err := client.GenerateContent(ctx, qc.Prompt, llm.TierStandard)
	if err != nil {
		log.Printf("completion service failed: %v", err)
		return FallbackAnswer, qc, nil
	}

	log.Printf("user question: %s", question)
	log.Printf("agent answer: %s", answer)
	return answer, qc, nil
}
