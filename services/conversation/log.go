package conversation

import (
	"sync"

	"trimly/models"
)

// Log keeps an ordered, append-only turn history per chat session, used as
// context for intent extraction. Histories are capped: once a session
// exceeds the limit the oldest turns are evicted first.
type Log struct {
	mu       sync.Mutex
	limit    int
	sessions map[string][]models.Turn
}

// NewLog builds a log keeping at most limit turns per session. A limit of
// zero or less disables eviction.
func NewLog(limit int) *Log {
	return &Log{limit: limit, sessions: make(map[string][]models.Turn)}
}

// Append records a turn at the end of the session's history.
func (l *Log) Append(sessionID, role, content string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	turns := append(l.sessions[sessionID], models.Turn{Role: role, Content: content})
	if l.limit > 0 && len(turns) > l.limit {
		turns = turns[len(turns)-l.limit:]
	}
	l.sessions[sessionID] = turns
}

// Turns returns an independent copy of the session's history in order.
func (l *Log) Turns(sessionID string) []models.Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	turns := l.sessions[sessionID]
	out := make([]models.Turn, len(turns))
	copy(out, turns)
	return out
}
