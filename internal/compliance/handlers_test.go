package compliance

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"callnotes-backend/internal/ai"
	"callnotes-backend/internal/annotate"
)

var handlerRefDay = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func newTestHandler(gemini annotate.Annotator) *Handler {
	h := NewHandler(annotate.RuleAnnotator{}, gemini, nil, zap.NewNop())
	h.now = func() time.Time { return handlerRefDay }
	return h
}

type stubAnnotator struct {
	res *annotate.Result
	err error
}

func (s stubAnnotator) Annotate(context.Context, string, time.Time) (*annotate.Result, error) {
	return s.res, s.err
}

func post(t *testing.T, h *Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_RuleEngine(t *testing.T) {
	rec := post(t, newTestHandler(nil), "/api/compliance", `{"notes": "Lunch with Dr. Johnson cost $95 total."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res annotate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	require.Len(t, res.Violations, 1)
	assert.Equal(t, "high", res.Violations[0].Severity)
	require.NotEmpty(t, res.Actions)
	assert.Equal(t, "Mar 2, 2026", res.Actions[0].DueDate)
	assert.Equal(t, "Dr. Johnson", res.Cleaned.HCPName)
}

func TestHandler_MissingNotes(t *testing.T) {
	h := newTestHandler(nil)

	for name, body := range map[string]string{
		"empty object": `{}`,
		"blank notes":  `{"notes": "   "}`,
		"not json":     `notes`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := post(t, h, "/api/compliance", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_UnknownEngine(t *testing.T) {
	rec := post(t, newTestHandler(nil), "/api/compliance?engine=oracle", `{"notes": "hello"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GeminiNotConfigured(t *testing.T) {
	rec := post(t, newTestHandler(nil), "/api/compliance?engine=gemini", `{"notes": "hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_GeminiEngine(t *testing.T) {
	stub := stubAnnotator{res: &annotate.Result{
		Violations: []annotate.Violation{},
		Actions: []annotate.FollowUpAction{{
			Priority: "urgent", Category: "CRM", Action: "Update CRM System",
			DueDate: "Mar 2, 2026", Notes: "Log today",
		}},
	}}

	rec := post(t, newTestHandler(stub), "/api/compliance?engine=gemini", `{"notes": "Quick visit."}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res annotate.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Actions, 1)
	assert.Equal(t, "CRM", res.Actions[0].Category)
}

func TestHandler_UpstreamFailureIsBadGateway(t *testing.T) {
	stub := stubAnnotator{err: &ai.UpstreamError{Reason: "empty completion"}}

	rec := post(t, newTestHandler(stub), "/api/compliance?engine=gemini", `{"notes": "Quick visit."}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "upstream annotation failure")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/compliance", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthHandler()(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
