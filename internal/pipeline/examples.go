package pipeline

// ExampleQuestions are the canned questions surfaced to users as
// starting points.
var ExampleQuestions = []string{
	"Which industries demand AI Researcher most?",
	"What skills are required on middle ML engineer position?",
	"What is an average salary of the Data Analyst?",
	"Which tools are required on senior level position in AI Product Manager?",
	"What skills overlap between entry NLP Engineer and middle AI Product Manager?",
}

// HighlightLevels and HighlightRoles summarize the dataset's vocabulary
// for display alongside the question input.
var (
	HighlightLevels = []string{"Entry", "Junior", "Middle", "Senior", "Lead"}

	HighlightRoles = []string{
		"AI Product Manager",
		"AI Researcher",
		"Computer Vision Engineer",
		"Data Analyst",
		"Data Scientist",
		"ML Engineer",
		"NLP Engineer",
		"Quant Researcher",
	}
)
