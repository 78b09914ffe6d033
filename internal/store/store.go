// Package store implements a thread-safe in-memory container for three
// entity classes: users, challenges, and sessions.
package store

import (
	"log/slog"
	"math/big"
	"sync"
)

// User is the persisted record for a registered identity: its public
// commitments, and back-references to its current outstanding challenge and
// most recent session, if any.
type User struct {
	ID        string
	Y1, Y2    *big.Int
	AuthID    string // empty when no challenge is outstanding
	SessionID string // empty until a session has been created
}

// Challenge is an outstanding Chaum-Pedersen challenge bound to a user.
type Challenge struct {
	AuthID string
	C      *big.Int
	R1, R2 *big.Int
	UserID string
}

// Session is created on successful verification. Sessions are never deleted
// in-process.
type Session struct {
	SessionID string
	UserID    string
}

// Store is a thread-safe associative container for User, Challenge, and
// Session. All three collections share one sync.RWMutex: the classes share
// cross-entity invariants that are best enforced inside a single lock scope.
//
// Every accessor returns a copy of the stored struct, so a caller cannot
// change which values a record holds except through Store's own methods. The
// *big.Int fields of such a copy are not cloned: they point at the same
// integers the store holds.
type Store struct {
	mu         sync.RWMutex
	users      map[string]User
	challenges map[string]Challenge
	sessions   map[string]Session
	logger     *slog.Logger
}

// New returns an empty Store. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		users:      make(map[string]User),
		challenges: make(map[string]Challenge),
		sessions:   make(map[string]Session),
		logger:     logger,
	}
}

// CreateUser inserts a new User. The caller must have already established
// that userID is not present: CreateUser does not check.
func (s *Store) CreateUser(userID string, y1, y2 *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = User{ID: userID, Y1: y1, Y2: y2}
	s.logger.Debug("store: user created", "user", userID)
}

// CreateChallenge inserts a Challenge for userID and sets User.AuthID to
// authID. The caller must have already ensured userID exists and that any
// prior outstanding challenge for userID has been deleted; this method does
// not supersede on its own.
func (s *Store) CreateChallenge(userID, authID string, c, r1, r2 *big.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[userID]
	user.AuthID = authID
	s.users[userID] = user
	s.challenges[authID] = Challenge{AuthID: authID, C: c, R1: r1, R2: r2, UserID: userID}
	s.logger.Debug("store: challenge created", "user", userID, "auth_id", authID)
}

// DeleteChallenge removes the Challenge with the given authID and clears the
// owning User's AuthID back-reference. It is a no-op if authID is unknown;
// the caller is responsible for guaranteeing the challenge it asks to delete
// actually exists when that matters.
func (s *Store) DeleteChallenge(authID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	challenge, ok := s.challenges[authID]
	if !ok {
		return
	}
	delete(s.challenges, authID)
	if user, ok := s.users[challenge.UserID]; ok && user.AuthID == authID {
		user.AuthID = ""
		s.users[challenge.UserID] = user
	}
	s.logger.Debug("store: challenge deleted", "auth_id", authID)
}

// CreateSession inserts a Session and sets the owning User's SessionID.
func (s *Store) CreateSession(userID, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.users[userID]
	user.SessionID = sessionID
	s.users[userID] = user
	s.sessions[sessionID] = Session{SessionID: sessionID, UserID: userID}
	s.logger.Debug("store: session created", "user", userID, "session_id", sessionID)
}

// GetUser returns a copy of the User for userID and whether it was found.
func (s *Store) GetUser(userID string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	return u, ok
}

// GetChallenge returns a copy of the Challenge for authID and whether it was
// found.
func (s *Store) GetChallenge(authID string) (Challenge, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[authID]
	return c, ok
}

// GetSession returns a copy of the Session for sessionID and whether it was
// found. A natural read-only counterpart kept for symmetry and used by
// tests.
func (s *Store) GetSession(sessionID string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}
