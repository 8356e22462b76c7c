package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

func TestPipeline_DraftJSON(t *testing.T) {
	p := NewPipeline(&SequenceIDs{Prefix: "draft"})

	draft, err := p.DraftJSON([]byte(`{"goal":"Announce a product launch"}`))
	require.NoError(t, err)
	assert.Equal(t, "draft-1", draft.DraftID)
	require.Len(t, draft.Variants, 3)
	for _, v := range draft.Variants {
		assert.Equal(t, Score(v.Content), v.Scoring, "scoring must match content of %s", v.Type)
	}

	again, err := p.DraftJSON([]byte(`{"goal":"Announce a product launch"}`))
	require.NoError(t, err)
	assert.Equal(t, "draft-2", again.DraftID)
	assert.Equal(t, draft.Variants, again.Variants)
}

func TestPipeline_DraftJSON_Invalid(t *testing.T) {
	p := NewPipeline(nil)
	_, err := p.DraftJSON([]byte(`{"goal":"no"}`))

	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.FieldErrors, "goal")
}

func TestPipeline_DraftInput(t *testing.T) {
	p := NewPipeline(&SequenceIDs{Prefix: "d"})
	draft, err := p.DraftInput(IntakeInput{Goal: model.Ptr("Refactor a function"), Format: model.Ptr("JSON")})
	require.NoError(t, err)
	assert.Contains(t, draft.Variants[0].Content, "Format: JSON.")
}

func TestPipeline_CritiqueAndScorePrompt(t *testing.T) {
	p := NewPipeline(nil)

	_, err := p.CritiquePrompt("")
	assert.ErrorIs(t, err, ErrMissingPrompt)
	_, err = p.ScorePrompt("")
	assert.ErrorIs(t, err, ErrMissingPrompt)

	c, err := p.CritiquePrompt("output json")
	require.NoError(t, err)
	assert.Equal(t, model.RiskLow, c.HallucinationRisk)

	s, err := p.ScorePrompt("short text")
	require.NoError(t, err)
	assert.Equal(t, 93, s.Total)
}

func TestPipeline_Rewrite(t *testing.T) {
	p := NewPipeline(nil)

	res, err := p.Rewrite(RewriteRequest{ID: "v1", Content: "Write a haiku"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Optimized, "Write a haiku\n\nGuardrails:"))
	assert.Equal(t, Critique("Write a haiku"), res.Critique)

	_, err = p.Rewrite(RewriteRequest{ID: "v1"})
	assert.ErrorIs(t, err, ErrMissingContent)

	reckless, err := p.Rewrite(RewriteRequest{Content: "x", Type: "reckless"})
	require.NoError(t, err, "unrecognized types are accepted")
	balanced, err := p.Rewrite(RewriteRequest{Content: "x", Type: model.VariantBalanced})
	require.NoError(t, err)
	assert.Equal(t, balanced, reckless)

	_, err = p.Rewrite(RewriteRequest{Content: "x", Type: model.VariantAggressive})
	assert.NoError(t, err)
}

func TestPipeline_NewTemplate(t *testing.T) {
	p := NewPipeline(&SequenceIDs{Prefix: "tpl"})

	tpl, err := p.NewTemplate("Cold email", "Write a cold email")
	require.NoError(t, err)
	assert.Equal(t, model.Template{ID: "tpl-1", Name: "Cold email", Body: "Write a cold email"}, tpl)

	_, err = p.NewTemplate("", "body")
	assert.ErrorIs(t, err, ErrMissingTemplate)
}

func TestStubExporter(t *testing.T) {
	e := &StubExporter{}
	res, err := e.Export(context.Background(), ExportRequest{PromptID: "p-1", Target: "notion page"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.promptfoundry.dev/export/p-1?target=notion+page", res.Link)
	assert.Equal(t, "ready", res.Status)

	e = &StubExporter{BaseURL: "http://localhost:9000/x/"}
	res, err = e.Export(context.Background(), ExportRequest{PromptID: "a/b", Target: "t"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/x/a%2Fb?target=t", res.Link)

	_, err = e.Export(context.Background(), ExportRequest{PromptID: "p-1"})
	assert.ErrorIs(t, err, ErrMissingExport)
}

func TestStubRunner(t *testing.T) {
	r := &StubRunner{}
	res, err := r.Run(context.Background(), RunRequest{PromptID: "p-1", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", res.Model)
	assert.Equal(t, 0.001, res.CostUSD)
	assert.Equal(t, 1800, res.LatencyMs)
	assert.NotEmpty(t, res.Output)

	_, err = r.Run(context.Background(), RunRequest{Model: "m"})
	assert.ErrorIs(t, err, ErrMissingRun)
}
