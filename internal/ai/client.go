// Package ai provides the Gemini-backed annotator: the same
// note-in/result-out contract as the rule engine, delegated to a
// generative model with a strict JSON response.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"callnotes-backend/internal/annotate"
)

const defaultModel = "gemini-2.5-flash"

// Generation settings for the annotation call. Low temperature keeps
// the classification stable; 4096 tokens covers the full three-key
// response for long notes.
const (
	annotationTemperature     = 0.1
	annotationMaxOutputTokens = 4096
)

// UpstreamError reports a failure of the Gemini collaborator: transport
// errors, empty completions, unparsable JSON, or a response violating
// the annotation contract. Callers must surface it, never substitute a
// default result.
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream annotation failure: %s: %v", e.Reason, e.Err)
	}
	return "upstream annotation failure: " + e.Reason
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// GeminiAnnotator implements annotate.Annotator against the Gemini API.
type GeminiAnnotator struct {
	client *genai.Client
	model  string
}

// NewGeminiAnnotator creates the Gemini annotator. model falls back to
// the suite default when empty.
func NewGeminiAnnotator(ctx context.Context, apiKey, model string) (*GeminiAnnotator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiAnnotator{client: client, model: model}, nil
}

func (g *GeminiAnnotator) Annotate(ctx context.Context, note string, today time.Time) (*annotate.Result, error) {
	prompt := BuildAnnotationPrompt(note, today)

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](annotationTemperature),
			MaxOutputTokens:  annotationMaxOutputTokens,
		},
	)
	if err != nil {
		return nil, &UpstreamError{Reason: "generate content", Err: err}
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return nil, &UpstreamError{Reason: "empty completion"}
	}

	return parseResult([]byte(text))
}

// parseResult decodes and validates one completion against the
// annotation contract. The rule-based and Gemini-based results are only
// structurally compatible, so validation checks shape, not content.
func parseResult(raw []byte) (*annotate.Result, error) {
	var res annotate.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &UpstreamError{Reason: "unparsable completion", Err: err}
	}

	if len(res.Actions) == 0 {
		return nil, &UpstreamError{Reason: "completion has no actions"}
	}
	for _, v := range res.Violations {
		switch v.Severity {
		case annotate.SeverityCritical, annotate.SeverityHigh, annotate.SeverityMedium:
		default:
			return nil, &UpstreamError{Reason: fmt.Sprintf("unknown violation severity %q", v.Severity)}
		}
	}
	for _, a := range res.Actions {
		switch a.Priority {
		case annotate.PriorityUrgent, annotate.PriorityHigh, annotate.PriorityMedium, annotate.PriorityLow:
		default:
			return nil, &UpstreamError{Reason: fmt.Sprintf("unknown action priority %q", a.Priority)}
		}
	}
	if res.Violations == nil {
		res.Violations = []annotate.Violation{}
	}

	return &res, nil
}
