package gateway

import "sync"

// idLocker serializes operations against the same transaction ID while
// letting different IDs proceed concurrently. Entries are reference
// counted and dropped once the last holder unlocks.
type idLocker struct {
	mu    sync.Mutex
	locks map[string]*idLock
}

type idLock struct {
	mu   sync.Mutex
	refs int
}

func newIDLocker() *idLocker {
	return &idLocker{locks: make(map[string]*idLock)}
}

// lock acquires the critical section for id and returns its release func.
func (l *idLocker) lock(id string) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &idLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
