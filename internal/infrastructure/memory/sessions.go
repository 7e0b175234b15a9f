package memory

import (
	"context"
	"sync"

	"github.com/cookeasy/backend/internal/domain"
)

// SessionStore keeps one session per user id. Update serialises writers so each
// session has a single writer at a time.
type SessionStore struct {
	sessions map[string]*domain.Session
	mutex    sync.RWMutex
	newFn    func(domain.User) domain.Session
}

// NewSessionStore creates a store; newFn builds the initial state for a first-time user
func NewSessionStore(newFn func(domain.User) domain.Session) *SessionStore {
	if newFn == nil {
		newFn = func(u domain.User) domain.Session {
			return domain.Session{User: u, Navigation: domain.InitialNavigation()}
		}
	}
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		newFn:    newFn,
	}
}

// Get returns a copy of the user's session, creating an unsaved fresh one if needed
func (s *SessionStore) Get(ctx context.Context, user domain.User) (*domain.Session, error) {
	s.mutex.RLock()
	existing, ok := s.sessions[user.ID]
	s.mutex.RUnlock()

	if !ok {
		fresh := s.newFn(user)
		return &fresh, nil
	}
	copied := cloneSession(*existing)
	return &copied, nil
}

// Update runs fn against a copy of the session and commits it only when fn returns nil
func (s *SessionStore) Update(ctx context.Context, user domain.User, fn func(*domain.Session) error) (*domain.Session, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var working domain.Session
	if existing, ok := s.sessions[user.ID]; ok {
		working = cloneSession(*existing)
	} else {
		working = s.newFn(user)
	}
	working.User = user

	if err := fn(&working); err != nil {
		return nil, err
	}

	stored := cloneSession(working)
	s.sessions[user.ID] = &stored
	return &working, nil
}

// Size returns the number of stored sessions
func (s *SessionStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}
