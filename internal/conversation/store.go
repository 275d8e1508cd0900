package conversation

import (
	"sync"

	"shootbook/internal/domain/reservation"
)

// Store owns every in-progress conversation, keyed by requester identity.
// Exactly one session may be active per requester; entries are dropped as
// soon as the conversation completes or is abandoned.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

type Session struct {
	mu    sync.Mutex
	store *Store
	key   int64
	state *State
}

func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Acquire locks the requester's session so events for the same identity run
// to completion one at a time. The returned release func must be called.
func (s *Store) Acquire(requesterID int64) (*Session, func()) {
	for {
		s.mu.Lock()
		sess, ok := s.sessions[requesterID]
		if !ok {
			sess = &Session{store: s, key: requesterID}
			s.sessions[requesterID] = sess
		}
		s.mu.Unlock()

		sess.mu.Lock()
		// The entry may have been cleared and replaced while we waited for
		// its lock; retry on a stale entry so no update lands on an orphan.
		s.mu.Lock()
		current := s.sessions[requesterID]
		s.mu.Unlock()
		if current == sess {
			return sess, func() {
				// An idle session holds no state; drop the entry on release
				// so requesters who never start a flow don't accumulate.
				if sess.state == nil {
					s.mu.Lock()
					if s.sessions[requesterID] == sess {
						delete(s.sessions, requesterID)
					}
					s.mu.Unlock()
				}
				sess.mu.Unlock()
			}
		}
		sess.mu.Unlock()
	}
}

// State returns the in-progress conversation state, or nil when idle.
func (s *Session) State() *State {
	return s.state
}

// Begin starts a fresh booking flow, discarding any prior in-progress state
// for this requester.
func (s *Session) Begin(requester reservation.Requester) *State {
	s.state = newState(requester)
	return s.state
}

// Clear destroys the conversation state and garbage-collects the entry.
func (s *Session) Clear() {
	s.state = nil
	s.store.mu.Lock()
	if s.store.sessions[s.key] == s {
		delete(s.store.sessions, s.key)
	}
	s.store.mu.Unlock()
}
