package model

// UseCase is a static catalog entry used to seed Intake.Goal.
type UseCase struct {
	ID     string `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Title  string `json:"title" yaml:"title"`
	Prompt string `json:"prompt" yaml:"prompt"`
}

// Template is the public shape of a use case (and of user-created templates).
type Template struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Body string `json:"body"`
}

// AsTemplate exposes the use case as a Template.
func (u UseCase) AsTemplate() Template {
	return Template{ID: u.ID, Name: u.Label, Body: u.Prompt}
}

// SamplePrompt is a curated, read-only library entry.
type SamplePrompt struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Variant string   `json:"variant" yaml:"variant"`
	Score   int      `json:"score" yaml:"score"`
	Tags    []string `json:"tags" yaml:"tags"`
	UseCase string   `json:"useCase" yaml:"use_case"`
	Content string   `json:"content" yaml:"content"`
}

// HasTag reports whether the sample carries tag.
func (p SamplePrompt) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SampleFilter holds query parameters for listing sample prompts.
type SampleFilter struct {
	Variant string
	Tag     string
}
