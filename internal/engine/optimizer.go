package engine

import (
	"strings"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

// Closing directives appended after the critique's guardrails.
const (
	directiveAssumptions = "State explicit assumptions."
	directiveValidations = "End with a summary of validations performed."
)

// Optimize appends a "Guardrails:" block to the variant's content listing the
// critique's missing guardrails followed by the closing directives. The
// content itself is left untouched.
func Optimize(v model.Variant, c model.Critique) string {
	var b strings.Builder
	b.WriteString(v.Content)
	b.WriteString("\n\nGuardrails:")
	for _, g := range c.MissingGuardrails {
		b.WriteString("\n- ")
		b.WriteString(g)
	}
	b.WriteString("\n- " + directiveAssumptions)
	b.WriteString("\n- " + directiveValidations)
	return b.String()
}
