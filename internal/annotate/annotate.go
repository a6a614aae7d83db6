// Package annotate implements the deterministic call-note compliance
// engine: violation detection, follow-up planning and CRM record
// normalization. All three operations are pure functions of the note
// text and a reference date, so they are safe under unbounded parallel
// invocation.
package annotate

import (
	"context"
	"time"
)

// Annotator turns one raw call note into violations, follow-up actions
// and a cleaned CRM record. The rule engine and the Gemini-backed
// implementation both satisfy it; callers must treat the outputs as
// structurally compatible, not identical.
type Annotator interface {
	Annotate(ctx context.Context, note string, today time.Time) (*Result, error)
}

// RuleAnnotator is the deterministic, lexical implementation. The zero
// value is ready to use.
type RuleAnnotator struct{}

func (RuleAnnotator) Annotate(_ context.Context, note string, today time.Time) (*Result, error) {
	cleaned, sanitized := CleanContent(note, today)
	return &Result{
		Violations:     DetectViolations(note),
		Actions:        PlanFollowUps(note, today),
		Cleaned:        cleaned,
		SanitizedNotes: sanitized,
	}, nil
}
