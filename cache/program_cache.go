package program_cache

import (
	"sync"
	"time"

	"github.com/nyashaushe/loyaltAI/models"
)

const TTL = 5 * time.Minute

// ── Program rules cache ──────────────────────────────────────────────────────
// Earn endpoints read the tenant's points-per-dollar on every transaction;
// rules change rarely, so a short per-tenant TTL avoids a query per purchase.

type entry struct {
	program   models.Program
	fetchedAt time.Time
}

var (
	mu    sync.RWMutex
	cache = make(map[string]*entry)
)

func Get(tenantID string) (models.Program, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if e, ok := cache[tenantID]; ok && time.Since(e.fetchedAt) < TTL {
		return e.program, true
	}
	return models.Program{}, false
}

func Set(tenantID string, program models.Program) {
	mu.Lock()
	defer mu.Unlock()
	cache[tenantID] = &entry{program: program, fetchedAt: time.Now()}
}

// ── Invalidate (call on any program-rules update) ────────────────────────────

func Invalidate(tenantID string) {
	mu.Lock()
	delete(cache, tenantID)
	mu.Unlock()
}
