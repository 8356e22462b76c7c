package engine

import (
	"context"
	"net/url"
	"strings"
)

// DefaultExportBaseURL is where StubExporter points its synthesized links.
const DefaultExportBaseURL = "https://api.promptfoundry.dev/export"

const (
	stubRunOutput    = "Simulated output. Here we would run the prompt against the chosen model."
	stubRunCostUSD   = 0.001
	stubRunLatencyMs = 1800
	exportReady      = "ready"
)

// StubExporter synthesizes an export link without contacting any service.
type StubExporter struct {
	BaseURL string
}

func (e *StubExporter) Export(_ context.Context, req ExportRequest) (*ExportResult, error) {
	if req.PromptID == "" || req.Target == "" {
		return nil, ErrMissingExport
	}
	base := e.BaseURL
	if base == "" {
		base = DefaultExportBaseURL
	}
	link := strings.TrimRight(base, "/") + "/" + url.PathEscape(req.PromptID) + "?target=" + url.QueryEscape(req.Target)
	return &ExportResult{Link: link, Status: exportReady}, nil
}

// StubRunner returns a canned run result without invoking any model.
type StubRunner struct{}

func (r *StubRunner) Run(_ context.Context, req RunRequest) (*RunResult, error) {
	if req.PromptID == "" || req.Model == "" {
		return nil, ErrMissingRun
	}
	return &RunResult{
		Output:    stubRunOutput,
		Model:     req.Model,
		CostUSD:   stubRunCostUSD,
		LatencyMs: stubRunLatencyMs,
	}, nil
}
