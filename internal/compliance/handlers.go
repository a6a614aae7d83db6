// Package compliance exposes the call-note annotation engines over HTTP.
package compliance

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"callnotes-backend/internal/ai"
	"callnotes-backend/internal/analytics"
	"callnotes-backend/internal/annotate"
)

// Engine names accepted by the ?engine query parameter.
const (
	EngineRules  = "rules"
	EngineGemini = "gemini"
)

// Handler answers POST /api/compliance. The rule engine is the default;
// ?engine=gemini selects the generative annotator when configured. Both
// return the same three-key shape.
type Handler struct {
	rules  annotate.Annotator
	gemini annotate.Annotator // nil when no API key is configured
	dbx    *sql.DB            // nil disables analytics
	log    *zap.Logger

	// now is swappable for tests; due dates derive from it.
	now func() time.Time
}

func NewHandler(rules, gemini annotate.Annotator, dbx *sql.DB, log *zap.Logger) *Handler {
	return &Handler{
		rules:  rules,
		gemini: gemini,
		dbx:    dbx,
		log:    log,
		now:    time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Notes) == "" {
		http.Error(w, "missing or invalid notes field", http.StatusBadRequest)
		return
	}

	engineName := r.URL.Query().Get("engine")
	if engineName == "" {
		engineName = EngineRules
	}

	var annotator annotate.Annotator
	switch engineName {
	case EngineRules:
		annotator = h.rules
	case EngineGemini:
		if h.gemini == nil {
			http.Error(w, "gemini engine not configured", http.StatusServiceUnavailable)
			return
		}
		annotator = h.gemini
	default:
		http.Error(w, "unknown engine", http.StatusBadRequest)
		return
	}

	res, err := annotator.Annotate(r.Context(), body.Notes, h.now())
	if err != nil {
		var upstream *ai.UpstreamError
		if errors.As(err, &upstream) {
			h.log.Warn("annotation upstream failure",
				zap.String("engine", engineName), zap.Error(err))
			http.Error(w, upstream.Error(), http.StatusBadGateway)
			return
		}
		h.log.Error("annotation failed", zap.String("engine", engineName), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	env := analytics.FromRequest(r)
	_ = analytics.Log(r.Context(), h.dbx, env, analytics.EventNoteAnnotated, map[string]any{
		"engine":     engineName,
		"violations": len(res.Violations),
		"actions":    len(res.Actions),
		"note_chars": len(body.Notes),
	}, analytics.SourceEventKeyFromRequest(r))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
}

// HealthHandler reports service liveness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "call notes API is running",
		})
	}
}
