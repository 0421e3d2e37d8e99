package service

import "sync"

// characterLocks serializes track mutations per character. Mutations on
// different characters proceed concurrently; two mutations on the same
// character never interleave their read-modify-write cycles.
type characterLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCharacterLocks() *characterLocks {
	return &characterLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for characterID and returns its unlock function.
// Lock entries are retained for the lifetime of the service; the set of
// characters in one process is small.
func (c *characterLocks) acquire(characterID string) func() {
	c.mu.Lock()
	lock, ok := c.locks[characterID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[characterID] = lock
	}
	c.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
