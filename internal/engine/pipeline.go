package engine

import (
	"errors"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

// Request errors. Each rejects a request before any computation.
var (
	ErrMissingPrompt   = errors.New("prompt is required")
	ErrMissingContent  = errors.New("variant content is required")
	ErrMissingTemplate = errors.New("name and body are required")
	ErrMissingExport   = errors.New("promptId and target are required")
	ErrMissingRun      = errors.New("promptId and model are required")
)

// optimizedTitle is the title given to a variant rebuilt for rewriting.
const optimizedTitle = "Optimized"

// Pipeline wires the validator, generator, critic, optimizer and scorer
// together with an identifier source.
type Pipeline struct {
	validator *IntakeValidator
	ids       IDGenerator
}

// NewPipeline creates a pipeline minting identifiers with ids.
func NewPipeline(ids IDGenerator) *Pipeline {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &Pipeline{validator: NewIntakeValidator(), ids: ids}
}

// DraftJSON validates a raw intake body and generates a scored draft.
// Invalid input yields a *model.ValidationError.
func (p *Pipeline) DraftJSON(raw []byte) (*model.Draft, error) {
	intake, err := p.validator.ValidateJSON(raw)
	if err != nil {
		return nil, err
	}
	return p.Generate(intake), nil
}

// DraftInput validates a decoded intake and generates a scored draft.
func (p *Pipeline) DraftInput(in IntakeInput) (*model.Draft, error) {
	intake, err := p.validator.ValidateInput(in)
	if err != nil {
		return nil, err
	}
	return p.Generate(intake), nil
}

// Generate produces the three variants of a validated intake, each annotated
// with the score of its content, under a fresh draft id.
func (p *Pipeline) Generate(in model.Intake) *model.Draft {
	variants := GenerateVariants(in)
	scored := make([]model.ScoredVariant, 0, len(variants))
	for _, v := range variants {
		scored = append(scored, model.ScoredVariant{Variant: v, Scoring: Score(v.Content)})
	}
	return &model.Draft{DraftID: p.ids.NewID(), Variants: scored}
}

// CritiquePrompt critiques a non-empty prompt.
func (p *Pipeline) CritiquePrompt(prompt string) (model.Critique, error) {
	if prompt == "" {
		return model.Critique{}, ErrMissingPrompt
	}
	return Critique(prompt), nil
}

// ScorePrompt scores a non-empty prompt.
func (p *Pipeline) ScorePrompt(prompt string) (model.Scoring, error) {
	if prompt == "" {
		return model.Scoring{}, ErrMissingPrompt
	}
	return Score(prompt), nil
}

// RewriteRequest is the variant a caller wants optimized. An empty Type means
// balanced; any other value is carried through unchecked.
type RewriteRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// RewriteResult holds the optimized text and the critique it was built from.
type RewriteResult struct {
	Optimized string         `json:"optimized"`
	Critique  model.Critique `json:"critique"`
}

// Rewrite critiques the variant's content and optimizes it with that critique.
func (p *Pipeline) Rewrite(req RewriteRequest) (*RewriteResult, error) {
	if req.Content == "" {
		return nil, ErrMissingContent
	}
	typ := req.Type
	if typ == "" {
		typ = model.VariantBalanced
	}

	critique := Critique(req.Content)
	v := model.Variant{
		ID:      req.ID,
		Type:    typ,
		Title:   optimizedTitle,
		Content: req.Content,
	}
	return &RewriteResult{Optimized: Optimize(v, critique), Critique: critique}, nil
}

// NewTemplate echoes a user-created template under a fresh id. Nothing is stored.
func (p *Pipeline) NewTemplate(name, body string) (model.Template, error) {
	if name == "" || body == "" {
		return model.Template{}, ErrMissingTemplate
	}
	return model.Template{ID: p.ids.NewID(), Name: name, Body: body}, nil
}
