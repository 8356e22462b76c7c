package engine

import (
	"strings"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

var (
	// schemaMarkers declare an output format.
	schemaMarkers = []string{"json", "markdown", "schema"}
	// lengthMarkers declare a length limit.
	lengthMarkers = []string{"words", "tokens"}
)

const (
	issueSchemaMissing = "Specify the output structure (JSON/Markdown) so it can be tested."
	issueSchemaPresent = "Output format present."
	issueLengthMissing = "Make length or section limits explicit."
	issueLengthPresent = "Length controlled."
)

var (
	clarifyingQuestions = []string{
		"What is the authoritative source or reference style?",
		"Should negative examples to avoid be included?",
	}
	suggestedGuardrails = []string{
		"Add a clause: 'if information is missing, ask 2 questions'.",
		"Include a schema compliance check at the end of the response.",
	}
)

// Critique lints content for a missing output format and a missing length
// limit using case-insensitive keyword checks. The questions and guardrail
// suggestions are the same for every input.
func Critique(content string) model.Critique {
	lower := strings.ToLower(content)
	needsSchema := !containsAny(lower, schemaMarkers)
	needsLength := !containsAny(lower, lengthMarkers)

	issues := make([]string, 0, 2)
	if needsSchema {
		issues = append(issues, issueSchemaMissing)
	} else {
		issues = append(issues, issueSchemaPresent)
	}
	if needsLength {
		issues = append(issues, issueLengthMissing)
	} else {
		issues = append(issues, issueLengthPresent)
	}

	risk := model.RiskLow
	if needsSchema {
		risk = model.RiskMedium
	}

	return model.Critique{
		Issues:            issues,
		Questions:         append([]string(nil), clarifyingQuestions...),
		HallucinationRisk: risk,
		MissingGuardrails: append([]string(nil), suggestedGuardrails...),
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
