package core

import "context"

// ScoreStore persists the best score of each game across sessions.
// Implementations must never lower a stored value.
type ScoreStore interface {
	// HighScore returns the stored best score, or 0 if none exists.
	HighScore(gameID string) (int, error)
	// SetHighScore records a new best score.
	SetHighScore(gameID string, score int) error
}

// ReportActionGameScore is the action tag sent with every final score.
const ReportActionGameScore = "game_score"

// ScoreReport is delivered to a Notifier when a run ends.
type ScoreReport struct {
	Action    string `json:"action"`
	GameID    string `json:"gameId,omitempty"`
	Score     int    `json:"score"`
	HighScore int    `json:"highScore"`
	UserID    string `json:"userId,omitempty"` // Opaque identifier supplied by the host
}

// Notifier reports final scores to an external host.
// Delivery is best-effort; callers log and drop errors.
type Notifier interface {
	Notify(ctx context.Context, report ScoreReport) error
}
