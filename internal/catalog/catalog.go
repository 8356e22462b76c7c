// Package catalog holds the read-only tables of use cases and sample prompts.
// The tables are decoded once from YAML, either the embedded default or a
// file supplied at startup, and never change afterwards.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/promptfoundry/promptfoundry/internal/model"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("catalog: not found")

type document struct {
	UseCases []model.UseCase      `yaml:"use_cases"`
	Samples  []model.SamplePrompt `yaml:"samples"`
}

// Catalog is an immutable set of use cases and sample prompts.
// Accessors return copies so callers cannot mutate the tables.
type Catalog struct {
	useCases []model.UseCase
	samples  []model.SamplePrompt
	byID     map[string]int
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path yields the default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and checks a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]bool, len(doc.UseCases))
	for i, uc := range doc.UseCases {
		if uc.ID == "" || uc.Prompt == "" {
			return nil, fmt.Errorf("use case %d: id and prompt are required", i)
		}
		if seen[uc.ID] {
			return nil, fmt.Errorf("use case %q: duplicate id", uc.ID)
		}
		seen[uc.ID] = true
	}

	byID := make(map[string]int, len(doc.Samples))
	for i, s := range doc.Samples {
		if s.ID == "" || s.Content == "" {
			return nil, fmt.Errorf("sample %d: id and content are required", i)
		}
		if !model.IsVariantType(s.Variant) {
			return nil, fmt.Errorf("sample %q: unknown variant %q", s.ID, s.Variant)
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("sample %q: duplicate id", s.ID)
		}
		byID[s.ID] = i
	}

	return &Catalog{useCases: doc.UseCases, samples: doc.Samples, byID: byID}, nil
}

// UseCases returns every use case in catalog order.
func (c *Catalog) UseCases() []model.UseCase {
	return append([]model.UseCase{}, c.useCases...)
}

// Templates returns the use cases in their public template shape.
func (c *Catalog) Templates() []model.Template {
	out := make([]model.Template, 0, len(c.useCases))
	for _, uc := range c.useCases {
		out = append(out, uc.AsTemplate())
	}
	return out
}

// Samples returns the sample prompts matching f, in catalog order.
func (c *Catalog) Samples(f model.SampleFilter) []model.SamplePrompt {
	out := make([]model.SamplePrompt, 0, len(c.samples))
	for _, s := range c.samples {
		if f.Variant != "" && s.Variant != f.Variant {
			continue
		}
		if f.Tag != "" && !s.HasTag(f.Tag) {
			continue
		}
		out = append(out, cloneSample(s))
	}
	return out
}

// Sample returns the sample prompt with the given id.
func (c *Catalog) Sample(id string) (model.SamplePrompt, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.SamplePrompt{}, fmt.Errorf("sample %q: %w", id, ErrNotFound)
	}
	return cloneSample(c.samples[i]), nil
}

func cloneSample(s model.SamplePrompt) model.SamplePrompt {
	s.Tags = append([]string{}, s.Tags...)
	return s
}
