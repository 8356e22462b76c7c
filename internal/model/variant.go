package model

// VariantType constants
const (
	VariantSafe       = "safe"
	VariantBalanced   = "balanced"
	VariantAggressive = "aggressive"
)

// VariantTypes lists every variant type in generation order.
var VariantTypes = []string{VariantSafe, VariantBalanced, VariantAggressive}

// IsVariantType reports whether t names a known variant type.
func IsVariantType(t string) bool {
	switch t {
	case VariantSafe, VariantBalanced, VariantAggressive:
		return true
	}
	return false
}

// Variant is one stylistic rendering of a generated prompt.
// Score is the static baseline for the variant type, not the Scorer's result.
type Variant struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Score     int    `json:"score"`
	Rationale string `json:"rationale"`
}

// ScoredVariant is a Variant annotated with the Scorer's output for its content.
type ScoredVariant struct {
	Variant
	Scoring Scoring `json:"scoring"`
}

// Draft is the result of one generation request.
type Draft struct {
	DraftID  string          `json:"draftId"`
	Variants []ScoredVariant `json:"variants"`
}
