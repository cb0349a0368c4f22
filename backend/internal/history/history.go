// Package history keeps the per-session conversation log.
package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Turn is one classified query.
type Turn struct {
	ID        string    `json:"turn_id"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Intent    string    `json:"intent"`
	Matched   []string  `json:"matched"`
}

// Log is an append-only list of turns owned by one session.
// It is safe for concurrent use.
type Log struct {
	mu        sync.Mutex
	sessionID string
	turns     []Turn
	sink      *Sink
	now       func() time.Time
}

// NewLog creates an empty log. sink may be nil.
func NewLog(sessionID string, sink *Sink) *Log {
	return &Log{
		sessionID: sessionID,
		sink:      sink,
		now:       time.Now,
	}
}

// WithClock replaces the timestamp source.
func (l *Log) WithClock(now func() time.Time) *Log {
	l.now = now
	return l
}

// Append records a turn and returns it with ID and timestamp filled in.
func (l *Log) Append(query, intent string, matched []string) Turn {
	l.mu.Lock()
	turn := Turn{
		ID:        uuid.NewString(),
		SessionID: l.sessionID,
		Timestamp: l.now().UTC(),
		Query:     query,
		Intent:    intent,
		Matched:   append([]string(nil), matched...),
	}
	l.turns = append(l.turns, turn)
	l.mu.Unlock()

	if l.sink != nil {
		l.sink.Write(turn)
	}
	return turn
}

// Turns returns a copy of all turns in append order.
func (l *Log) Turns() []Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}
