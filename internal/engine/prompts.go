package engine

import (
	"fmt"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

// Placeholders used when an optional intake field is absent or empty.
const (
	fallbackGoal        = "Specify your goal"
	fallbackContext     = "minimal context"
	fallbackTone        = "professional"
	fallbackConstraints = "explicit constraints"
	fallbackFormat      = "expected output format"
	fallbackAudience    = "to be specified"
)

// variantProfile is the static part of a variant: everything except the
// intake-dependent template text.
type variantProfile struct {
	Type          string
	Title         string
	Guardrail     string
	Assertiveness string
	Score         int
	Rationale     string
}

// profiles is ordered safe, balanced, aggressive.
var profiles = []variantProfile{
	{
		Type:          model.VariantSafe,
		Title:         "Safe variant",
		Guardrail:     "Add warnings when information is missing; cite sources or mark information as hypothetical.",
		Assertiveness: "Cautious",
		Score:         82,
		Rationale:     "Maximizes safety and output format compliance.",
	},
	{
		Type:          model.VariantBalanced,
		Title:         "Balanced variant",
		Guardrail:     "Use a neutral tone and remind to request missing data before execution.",
		Assertiveness: "Neutral",
		Score:         88,
		Rationale:     "Balances precision and creativity, with good schema adherence.",
	},
	{
		Type:          model.VariantAggressive,
		Title:         "Aggressive variant",
		Guardrail:     "Optimize for concision and speed; assume reasonable values when data is absent and flag the assumption in the output.",
		Assertiveness: "Direct",
		Score:         80,
		Rationale:     "Prioritizes completeness and speed with minimal guardrails.",
	},
}

// resolvedIntake is an Intake with every placeholder applied.
type resolvedIntake struct {
	Goal, Context, Tone, Constraints, Format, Audience string
}

func resolve(in model.Intake) resolvedIntake {
	goal := in.Goal
	if goal == "" {
		goal = fallbackGoal
	}
	return resolvedIntake{
		Goal:        goal,
		Context:     model.Or(in.Context, fallbackContext),
		Tone:        model.Or(in.Tone, fallbackTone),
		Constraints: model.Or(in.Constraints, fallbackConstraints),
		Format:      model.Or(in.Format, fallbackFormat),
		Audience:    model.Or(in.Audience, fallbackAudience),
	}
}

func buildVariantPrompt(r resolvedIntake, guardrail, assertiveness string) string {
	return fmt.Sprintf(
		"Role: expert %s. Goal: %s. Context: %s. Audience: %s. Constraints: %s. Format: %s. %s. Assertiveness level: %s. Follow the structure and avoid hallucination.",
		r.Tone, r.Goal, r.Context, r.Audience, r.Constraints, r.Format, guardrail, assertiveness,
	)
}
