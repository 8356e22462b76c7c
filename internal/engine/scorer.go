package engine

import (
	"math"
	"strings"
	"unicode/utf16"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

// Score bounds and weights.
const (
	MinScore = 60
	MaxScore = 100

	longPromptChars = 900
	lengthPenalty   = -5
	schemaBonus     = 3

	baseClarity           = 23
	baseCompleteness      = 18
	baseTestability       = 18
	baseHallucinationRisk = 16
	baseFormatCompliance  = 13

	// rawScale maps the raw sum onto the displayed scale: total = raw/90*95.
	rawScaleFrom = 90
	rawScaleTo   = 95
)

// Score computes a heuristic quality score for content. The total is the
// scaled sum of the breakdown, rounded half up and clamped to [60,100].
func Score(content string) model.Scoring {
	penalty := 0
	if textLength(content) > longPromptChars {
		penalty = lengthPenalty
	}
	bonus := 0
	if strings.Contains(strings.ToLower(content), "json") {
		bonus = schemaBonus
	}

	b := model.ScoreBreakdown{
		Clarity:           baseClarity + bonus,
		Completeness:      baseCompleteness,
		Testability:       baseTestability + bonus,
		HallucinationRisk: baseHallucinationRisk + penalty,
		FormatCompliance:  baseFormatCompliance + bonus,
	}
	return model.Scoring{Total: normalize(b.Sum()), Breakdown: b}
}

func normalize(raw int) int {
	scaled := int(math.Floor(float64(raw)/rawScaleFrom*rawScaleTo + 0.5))
	return min(MaxScore, max(MinScore, scaled))
}

// textLength counts s in UTF-16 code units, so characters outside the Basic
// Multilingual Plane count twice.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
