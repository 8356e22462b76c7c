package engine

import "github.com/promptfoundry/promptfoundry/internal/model"

// GenerateVariants renders the intake into exactly three variants, ordered
// safe, balanced, aggressive. Variant identifiers are their type, so the
// output is fully determined by the intake.
func GenerateVariants(in model.Intake) []model.Variant {
	r := resolve(in)
	variants := make([]model.Variant, 0, len(profiles))
	for _, p := range profiles {
		variants = append(variants, model.Variant{
			ID:        p.Type,
			Type:      p.Type,
			Title:     p.Title,
			Content:   buildVariantPrompt(r, p.Guardrail, p.Assertiveness),
			Score:     p.Score,
			Rationale: p.Rationale,
		})
	}
	return variants
}

// DefaultVariant returns the balanced variant, or the first one when there is
// no balanced variant. It returns false for an empty slice.
func DefaultVariant(variants []model.Variant) (model.Variant, bool) {
	if len(variants) == 0 {
		return model.Variant{}, false
	}
	for _, v := range variants {
		if v.Type == model.VariantBalanced {
			return v, true
		}
	}
	return variants[0], true
}
