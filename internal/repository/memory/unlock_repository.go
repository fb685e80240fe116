package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// UnlockRepository remembers which private worlds a page session has unlocked
// with a valid access code. Entries expire with the session; nothing here is
// ever persisted.
type UnlockRepository struct {
	cache *cache.Cache
}

func NewUnlockRepository() *UnlockRepository {
	// Default expiration of 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &UnlockRepository{
		cache: c,
	}
}

func unlockKey(sessionID string, worldID int) string {
	return fmt.Sprintf("%s:%d", sessionID, worldID)
}

func (r *UnlockRepository) Grant(sessionID string, worldID int) {
	r.cache.Set(unlockKey(sessionID, worldID), true, cache.DefaultExpiration)
}

func (r *UnlockRepository) Has(sessionID string, worldID int) bool {
	_, found := r.cache.Get(unlockKey(sessionID, worldID))
	return found
}

func (r *UnlockRepository) Revoke(sessionID string, worldID int) {
	r.cache.Delete(unlockKey(sessionID, worldID))
}
