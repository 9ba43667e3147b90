package auction

import "sync"

// keyedLocks hands out one mutex per auction id so mutations on the same
// auction serialize while distinct auctions proceed independently. Locks
// are created lazily and kept for the process lifetime; the set of live
// auctions is small enough that no eviction is needed.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the given key and returns its unlock func.
func (k *keyedLocks) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()

	l.Lock()
	return l.Unlock
}
