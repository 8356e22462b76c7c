package model

// ScoreBreakdown holds the five scored dimensions of a prompt.
type ScoreBreakdown struct {
	Clarity           int `json:"clarity"`
	Completeness      int `json:"completeness"`
	Testability       int `json:"testability"`
	HallucinationRisk int `json:"hallucinationRisk"`
	FormatCompliance  int `json:"formatCompliance"`
}

// Sum returns the raw, unnormalized total of all dimensions.
func (b ScoreBreakdown) Sum() int {
	return b.Clarity + b.Completeness + b.Testability + b.HallucinationRisk + b.FormatCompliance
}

// Scoring is the Scorer's output: a normalized total in [60,100] plus its breakdown.
type Scoring struct {
	Total     int            `json:"total"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}
