// Package leaderboard stores and serves the quiz games' score board.
package leaderboard

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"callnotes-backend/internal/analytics"
)

// Handler serves GET (top entries) and POST (submit score) on the
// leaderboard route. Reset is registered separately behind admin auth.
func Handler(dbx *sql.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			getLeaderboard(dbx, log, w, r)
		case http.MethodPost:
			postScore(dbx, log, w, r)
		case http.MethodOptions:
			w.WriteHeader(http.StatusOK)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func getLeaderboard(dbx *sql.DB, log *zap.Logger, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rows, err := dbx.QueryContext(
		r.Context(),
		`SELECT id, name, score, accuracy, total_questions, correct_answers, submitted_at
         FROM scores
         ORDER BY score DESC, submitted_at ASC
         LIMIT $1`,
		topLimit,
	)
	if err != nil {
		log.Error("leaderboard query failed", zap.Error(err))
		http.Error(w, "failed to fetch leaderboard", http.StatusInternalServerError)
		return
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Accuracy, &e.TotalQuestions, &e.CorrectAnswers, &e.Date); err != nil {
			log.Error("leaderboard scan failed", zap.Error(err))
			http.Error(w, "failed to fetch leaderboard", http.StatusInternalServerError)
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		log.Error("leaderboard rows failed", zap.Error(err))
		http.Error(w, "failed to fetch leaderboard", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(entries); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
}

func postScore(dbx *sql.DB, log *zap.Logger, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body struct {
		Name           string   `json:"name"`
		Score          *int     `json:"score"`
		Accuracy       *float64 `json:"accuracy"`
		TotalQuestions *int     `json:"totalQuestions"`
		CorrectAnswers *int     `json:"correctAnswers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(body.Name) == "" || body.Score == nil || body.Accuracy == nil {
		http.Error(w, "missing required fields: name, score, accuracy", http.StatusBadRequest)
		return
	}

	e := Entry{
		Name:           strings.TrimSpace(body.Name),
		Score:          *body.Score,
		Accuracy:       *body.Accuracy,
		TotalQuestions: defaultTotalQuestions,
		CorrectAnswers: defaultCorrectAnswers,
	}
	if body.TotalQuestions != nil {
		e.TotalQuestions = *body.TotalQuestions
	}
	if body.CorrectAnswers != nil {
		e.CorrectAnswers = *body.CorrectAnswers
	}

	row := dbx.QueryRowContext(
		r.Context(),
		`INSERT INTO scores (name, score, accuracy, total_questions, correct_answers)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, submitted_at`,
		e.Name, e.Score, e.Accuracy, e.TotalQuestions, e.CorrectAnswers,
	)
	if err := row.Scan(&e.ID, &e.Date); err != nil {
		log.Error("score insert failed", zap.Error(err))
		http.Error(w, "failed to save score", http.StatusInternalServerError)
		return
	}

	env := analytics.FromRequest(r)
	_ = analytics.Log(r.Context(), dbx, env, analytics.EventScoreSubmitted, map[string]any{
		"score":    e.Score,
		"accuracy": e.Accuracy,
	}, analytics.SourceEventKeyFromRequest(r))

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		http.Error(w, "encode error", http.StatusInternalServerError)
		return
	}
}

// ResetHandler wipes the board. Wire it behind admin auth only.
func ResetHandler(dbx *sql.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if _, err := dbx.ExecContext(r.Context(), `DELETE FROM scores`); err != nil {
			log.Error("leaderboard reset failed", zap.Error(err))
			http.Error(w, "failed to reset leaderboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}
}
