package summarize

import (
	"strings"

	"github.com/gaurav-prasanna/profilestrap/core"
)

// DefaultContentBudget is the total number of characters of page content
// sent to the model, divided evenly across pages.
const DefaultContentBudget = 8000

// NoContent is returned when there are no pages to summarize.
const NoContent = "No content available for summarization."

const profileInstructions = `Based on the following content from a company's website, create a comprehensive summary of their experience, expertise, and business profile. Focus on:

1. Company Overview & Mission
2. Years of Experience & Track Record
3. Core Services & Expertise
4. Technology Stack & Approach
5. Target Market & Clientele
6. Notable Projects & Portfolio
7. Business Philosophy & Methodology
8. Geographic Presence & Team Structure

Content to analyze:
`

// BuildPromptContent concatenates page content under per-page headers,
// truncating each page to budget/len(pages) characters.
func BuildPromptContent(pages *core.PipelineResult, budget int) string {
	n := pages.Len()
	if n == 0 {
		return ""
	}
	if budget <= 0 {
		budget = DefaultContentBudget
	}
	perPage := budget / n

	var b strings.Builder
	for _, rec := range pages.Records() {
		b.WriteString("\n\n--- ")
		b.WriteString(strings.ToUpper(rec.ID))
		b.WriteString(" ---\n")
		b.WriteString(truncate(rec.Content, perPage))
	}
	return b.String()
}

// BuildPrompt returns the full user prompt for a profile summary.
func BuildPrompt(pages *core.PipelineResult, budget int) string {
	return profileInstructions + BuildPromptContent(pages, budget)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
