// Package session holds the single shared simulation session: the extracted
// text of the current reference document, the dialogue history, and the topic
// label derived from the uploaded filename. The process keeps exactly one
// session; a new upload replaces it wholesale.
package session

import "sync"

// Store is the mutex-guarded conversation context. Concurrent callers are
// serialized; a Reset replaces the whole context atomically.
type Store struct {
	mu         sync.Mutex
	manualText string
	topic      string
	history    []Turn
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{topic: DefaultTopic}
}

// Reset replaces the reference text and topic together and clears the history.
func (s *Store) Reset(manualText, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manualText = manualText
	s.topic = topic
	s.history = nil
}

// Append adds a turn to the history. Growth is unbounded; truncation happens
// on read in Snapshot.
func (s *Store) Append(speaker Speaker, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{Speaker: speaker, Text: text})
}

// Snapshot returns the reference text, the last turns of the history (at most
// the grounding window, order preserved), and the topic.
func (s *Store) Snapshot() (manualText string, recent []Turn, topic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.history) - historyWindow
	if start < 0 {
		start = 0
	}
	recent = make([]Turn, len(s.history)-start)
	copy(recent, s.history[start:])

	return s.manualText, recent, s.topic
}

// ManualText returns the current reference text.
func (s *Store) ManualText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.manualText
}

// Topic returns the current topic label.
func (s *Store) Topic() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// Transcript returns a copy of the full dialogue history.
func (s *Store) Transcript() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}
