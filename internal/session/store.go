package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/DavidBen48/connect-sao-bento/internal/ledger"
)

const (
	// DefaultTTL is how long an idle session keeps its cart before expiring
	DefaultTTL = 30 * time.Minute

	// CleanupInterval is how often the background cleanup runs
	CleanupInterval = 1 * time.Minute
)

// Store owns one ledger per shopping session. The hosting layer creates one
// store for the process and threads ledgers to consumers by reference; there
// is no ambient singleton. Idle sessions expire after the TTL, which is the
// only way cart state ever leaves memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

type entry struct {
	ledger   *ledger.Ledger
	lastSeen time.Time
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions:    make(map[string]*entry),
		ttl:         ttl,
		stopCleanup: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// cleanupLoop periodically drops sessions idle past their TTL
func (s *Store) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.expireSessions()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) expireSessions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.ttl)
	for id, e := range s.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

// NewSession mints a fresh session id without allocating a ledger yet.
func (s *Store) NewSession() string {
	return uuid.NewString()
}

// Ledger returns the ledger owned by the session, creating an empty one on
// first touch and refreshing the idle timer.
func (s *Store) Ledger(sessionID string) *ledger.Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.sessions[sessionID]
	if !exists {
		e = &entry{ledger: ledger.New()}
		s.sessions[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.ledger
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background cleanup and waits for it to finish
func (s *Store) Close() error {
	close(s.stopCleanup)
	s.wg.Wait()
	return nil
}
