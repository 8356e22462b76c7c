package engine

import "context"

// IDGenerator mints opaque identifiers. It is the only nondeterministic
// dependency of the pipeline.
type IDGenerator interface {
	NewID() string
}

// Exporter publishes a prompt to an external target. Implementations in this
// repository are mock boundaries.
type Exporter interface {
	Export(ctx context.Context, req ExportRequest) (*ExportResult, error)
}

// Runner executes a prompt against a model. Implementations in this
// repository are mock boundaries.
type Runner interface {
	Run(ctx context.Context, req RunRequest) (*RunResult, error)
}

// ExportRequest identifies the prompt to export and where to.
type ExportRequest struct {
	PromptID string `json:"promptId"`
	Target   string `json:"target"`
}

// ExportResult is the outcome of an export.
type ExportResult struct {
	Link   string `json:"link"`
	Status string `json:"status"`
}

// RunRequest identifies the prompt to run and the model to run it on.
type RunRequest struct {
	PromptID string `json:"promptId"`
	Model    string `json:"model"`
}

// RunResult is the outcome of a run.
type RunResult struct {
	Output    string  `json:"output"`
	Model     string  `json:"model"`
	CostUSD   float64 `json:"costUsd"`
	LatencyMs int     `json:"latencyMs"`
}
