package leaderboard

import "time"

// Entry is one persisted leaderboard row. Date is the submission time;
// the board is queried score-first with earlier submissions winning ties.
type Entry struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Score          int       `json:"score"`
	Accuracy       float64   `json:"accuracy"`
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Date           time.Time `json:"date"`
}

// Defaults applied when a submission omits the optional fields.
const (
	defaultTotalQuestions = 10
	defaultCorrectAnswers = 0
)

// topLimit caps the board at its top entries.
const topLimit = 20
