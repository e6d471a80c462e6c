package session

import (
	"sync"
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
)

// Store is an in-memory session store keyed by user id.
//
// With a positive idle TTL, a flow untouched for longer than the TTL is treated
// as idle on the next Get and can be swept with PurgeExpired. A zero TTL keeps
// flows open until they finish.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	idleTTL  time.Duration
	now      func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(idleTTL time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[int64]*Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the user's session, creating an idle one if none exists.
func (s *Store) Get(userID int64) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return Session{UserID: userID, State: StateIdle}
	}

	if s.expired(sess) {
		sess.ResetFlow()
	}

	return clone(sess)
}

func (s *Store) Save(sess Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.UpdatedAt = s.now()
	c := clone(&sess)
	s.sessions[sess.UserID] = &c
}

// Delete tears the session down, listings included.
func (s *Store) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
}

// PurgeExpired drops sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) PurgeExpired() int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for id, sess := range s.sessions {
		if s.now().Sub(sess.UpdatedAt) > s.idleTTL {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}

// ActiveFlows counts sessions with an open booking or cancel flow.
func (s *Store) ActiveFlows() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, sess := range s.sessions {
		if sess.InFlow() && !s.expired(sess) {
			n++
		}
	}
	return n
}

func (s *Store) expired(sess *Session) bool {
	return s.idleTTL > 0 && sess.InFlow() && s.now().Sub(sess.UpdatedAt) > s.idleTTL
}

func clone(s *Session) Session {
	c := *s
	if s.Plots != nil {
		c.Plots = append([]domain.Plot(nil), s.Plots...)
	}
	if s.Bookings != nil {
		c.Bookings = append([]domain.Booking(nil), s.Bookings...)
	}
	return c
}
