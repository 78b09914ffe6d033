package auth

import (
	"sync"

	"github.com/nsheremet/zkpauth/internal/engine"
)

// engineGuard pairs an Engine with a reader-writer lock: write-locked only
// around a RandomExponent draw, read-locked for Parameters, Exponentiate,
// Solve, and Verify. Engine itself needs no internal synchronization, but
// holding this lock at the call site keeps the lock-ordering discipline
// enforced even as callers change.
type engineGuard struct {
	mu sync.RWMutex
	e  *engine.Engine
}

func newEngineGuard(e *engine.Engine) *engineGuard {
	return &engineGuard{e: e}
}

func (g *engineGuard) RLock()   { g.mu.RLock() }
func (g *engineGuard) RUnlock() { g.mu.RUnlock() }
func (g *engineGuard) Lock()    { g.mu.Lock() }
func (g *engineGuard) Unlock()  { g.mu.Unlock() }
