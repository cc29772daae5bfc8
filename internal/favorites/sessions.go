package favorites

import "sync"

// Sessions owns one favorites set per signed-in user for the lifetime
// of the process.
type Sessions struct {
	mu   sync.Mutex
	sets map[string]*Set
}

func NewSessions() *Sessions {
	return &Sessions{
		sets: make(map[string]*Set),
	}
}

// For returns the favorites set for a user, creating an empty one on
// first use.
func (s *Sessions) For(userID string) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[userID]
	if !ok {
		set = NewSet()
		s.sets[userID] = set
	}
	return set
}

// End discards a user's favorites set, ending the session.
func (s *Sessions) End(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, userID)
}
