package model

// Hallucination risk levels. RiskHigh is part of the vocabulary but the
// keyword critic never produces it.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// Critique is a structured report of weaknesses detected in a prompt's text.
type Critique struct {
	Issues            []string `json:"issues"`
	Questions         []string `json:"questions"`
	HallucinationRisk string   `json:"hallucinationRisk"`
	MissingGuardrails []string `json:"missingGuardrails"`
}
