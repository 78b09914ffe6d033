package store

import (
	"math/big"
	"sync"
	"testing"
)

func TestCreateAndGetUser(t *testing.T) {
	s := New(nil)
	s.CreateUser("alice", big.NewInt(1), big.NewInt(2))

	u, ok := s.GetUser("alice")
	if !ok {
		t.Fatal("expected to find alice")
	}
	if u.Y1.Cmp(big.NewInt(1)) != 0 || u.Y2.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("unexpected commitments: %+v", u)
	}
	if u.AuthID != "" || u.SessionID != "" {
		t.Fatalf("new user should have no challenge or session: %+v", u)
	}
}

func TestGetUserUnknown(t *testing.T) {
	s := New(nil)
	if _, ok := s.GetUser("ghost"); ok {
		t.Fatal("expected ghost to be absent")
	}
}

// Creating a challenge sets the user's AuthID, and superseding it
// (delete then create) must leave exactly one outstanding challenge.
func TestChallengeSupersession(t *testing.T) {
	s := New(nil)
	s.CreateUser("alice", big.NewInt(1), big.NewInt(2))

	s.CreateChallenge("alice", "a1", big.NewInt(5), big.NewInt(6), big.NewInt(7))
	u, _ := s.GetUser("alice")
	if u.AuthID != "a1" {
		t.Fatalf("AuthID = %q, want a1", u.AuthID)
	}

	// supersede: caller deletes the prior challenge first.
	s.DeleteChallenge("a1")
	s.CreateChallenge("alice", "a2", big.NewInt(8), big.NewInt(9), big.NewInt(10))

	u, _ = s.GetUser("alice")
	if u.AuthID != "a2" {
		t.Fatalf("AuthID = %q, want a2", u.AuthID)
	}
	if _, ok := s.GetChallenge("a1"); ok {
		t.Fatal("a1 should have been deleted by supersession")
	}
	c2, ok := s.GetChallenge("a2")
	if !ok || c2.UserID != "alice" {
		t.Fatalf("a2 missing or misattributed: %+v", c2)
	}
}

// Deleting a challenge makes it unretrievable and clears the user's
// back-reference.
func TestDeleteChallengeClearsBackReference(t *testing.T) {
	s := New(nil)
	s.CreateUser("alice", big.NewInt(1), big.NewInt(2))
	s.CreateChallenge("alice", "a1", big.NewInt(5), big.NewInt(6), big.NewInt(7))

	s.DeleteChallenge("a1")

	if _, ok := s.GetChallenge("a1"); ok {
		t.Fatal("challenge should be gone")
	}
	u, _ := s.GetUser("alice")
	if u.AuthID != "" {
		t.Fatalf("AuthID should be cleared, got %q", u.AuthID)
	}
}

func TestDeleteChallengeUnknownIsNoop(t *testing.T) {
	s := New(nil)
	s.DeleteChallenge("does-not-exist") // must not panic
}

func TestCreateSession(t *testing.T) {
	s := New(nil)
	s.CreateUser("alice", big.NewInt(1), big.NewInt(2))
	s.CreateSession("alice", "sess-1")

	u, _ := s.GetUser("alice")
	if u.SessionID != "sess-1" {
		t.Fatalf("SessionID = %q, want sess-1", u.SessionID)
	}
	sess, ok := s.GetSession("sess-1")
	if !ok || sess.UserID != "alice" {
		t.Fatalf("session missing or misattributed: %+v", sess)
	}
}

// Many goroutines creating and reading users at once (200 goroutines over 26
// ids, so several share each id) must not race; run with -race to check.
func TestConcurrentUsersDoNotRace(t *testing.T) {
	s := New(nil)
	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			s.CreateUser(id, big.NewInt(int64(i)), big.NewInt(int64(i+1)))
			s.GetUser(id)
		}(i)
	}
	wg.Wait()
}
