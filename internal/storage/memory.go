package storage

import (
	"sort"
	"sync"
	"time"
)

// Memory is an in-process Backend used when no database can be opened
// and in tests. Nothing survives the process.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	scores []ScoreEntry
	best   map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{best: make(map[string]int)}
}

// SaveScore records a finished run.
func (m *Memory) SaveScore(gameID string, score int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.scores = append(m.scores, ScoreEntry{
		ID:        m.nextID,
		GameID:    gameID,
		Score:     score,
		CreatedAt: time.Now(),
	})
	return m.nextID, nil
}

// TopScores returns the best limit runs for gameID, highest first.
func (m *Memory) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var entries []ScoreEntry
	for _, e := range m.scores {
		if e.GameID == gameID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// HighScore returns the best score for gameID, or 0.
func (m *Memory) HighScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScoreLocked(gameID), nil
}

func (m *Memory) highScoreLocked(gameID string) int {
	best := m.best[gameID]
	for _, e := range m.scores {
		if e.GameID == gameID && e.Score > best {
			best = e.Score
		}
	}
	return best
}

// SetHighScore raises the stored best score; lower values are ignored.
func (m *Memory) SetHighScore(gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score > m.best[gameID] {
		m.best[gameID] = score
	}
	return nil
}

// GetGameStats aggregates the runs of one game.
func (m *Memory) GetGameStats(gameID string) (*GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.statsLocked()[gameID]
	if stats == nil {
		stats = &GameStats{GameID: gameID}
	}
	stats.HighScore = m.highScoreLocked(gameID)
	return stats, nil
}

// GetAllGamesStats aggregates the runs of every game played.
func (m *Memory) GetAllGamesStats() (map[string]*GameStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.statsLocked()
	for id, gs := range stats {
		gs.HighScore = m.highScoreLocked(id)
	}
	return stats, nil
}

func (m *Memory) statsLocked() map[string]*GameStats {
	stats := make(map[string]*GameStats)
	for _, e := range m.scores {
		gs := stats[e.GameID]
		if gs == nil {
			gs = &GameStats{GameID: e.GameID}
			stats[e.GameID] = gs
		}
		gs.GamesCount++
		gs.TotalScore += int64(e.Score)
		if e.CreatedAt.After(gs.LastPlayed) {
			gs.LastPlayed = e.CreatedAt
		}
	}
	for _, gs := range stats {
		gs.AvgScore = float64(gs.TotalScore) / float64(gs.GamesCount)
	}
	return stats
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
