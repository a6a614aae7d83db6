// Package analytics records best-effort usage events for the training
// suite. Events never carry raw note text, and a failed insert never
// breaks the request that produced it.
package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Event names emitted by the suite's handlers.
const (
	EventNoteAnnotated  = "note_annotated"
	EventScoreSubmitted = "score_submitted"
)

// Envelope is what we store with every event. The suite has no user
// accounts, so events are keyed by the browser session.
type Envelope struct {
	SessionID    string
	Platform     string
	AppVersion   string
	DeviceLocale string
}

// FromRequest extracts envelope fields from request headers.
// Backend-trustable fields only.
func FromRequest(r *http.Request) Envelope {
	platform := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Platform")))
	if platform != "web" && platform != "ios" && platform != "android" {
		platform = "unknown"
	}

	locale := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if locale == "" {
		locale = strings.TrimSpace(r.Header.Get("X-Device-Locale"))
	}

	return Envelope{
		SessionID:    strings.TrimSpace(r.Header.Get("X-Session-Id")),
		Platform:     platform,
		AppVersion:   strings.TrimSpace(r.Header.Get("X-App-Version")),
		DeviceLocale: locale,
	}
}

// SourceEventKeyFromRequest returns the client-provided idempotency key,
// if any. Duplicate keys are ignored on insert.
func SourceEventKeyFromRequest(r *http.Request) string {
	if k := strings.TrimSpace(r.Header.Get("Idempotency-Key")); k != "" {
		return k
	}
	return strings.TrimSpace(r.Header.Get("X-Source-Event-Key"))
}

// Log inserts one analytics event. Callers pass sanitized props only.
func Log(ctx context.Context, db *sql.DB, env Envelope, eventName string, props any, sourceEventKey string) error {
	if db == nil || eventName == "" {
		return nil
	}

	b, err := json.Marshal(props)
	if err != nil {
		// props that can't marshal must not break the core flow
		return nil
	}

	if sourceEventKey != "" {
		_, err = db.ExecContext(ctx, `
			INSERT INTO analytics_events (
				event_name, event_time,
				session_id, platform, app_version, device_locale,
				source_event_key, properties
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb)
			ON CONFLICT (source_event_key) DO NOTHING
		`, eventName, time.Now().UTC(),
			nullIfEmpty(env.SessionID), env.Platform, nullIfEmpty(env.AppVersion), nullIfEmpty(env.DeviceLocale),
			sourceEventKey, string(b),
		)
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO analytics_events (
			event_name, event_time,
			session_id, platform, app_version, device_locale,
			properties
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
	`, eventName, time.Now().UTC(),
		nullIfEmpty(env.SessionID), env.Platform, nullIfEmpty(env.AppVersion), nullIfEmpty(env.DeviceLocale),
		string(b),
	)
	return err
}

func nullIfEmpty(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
