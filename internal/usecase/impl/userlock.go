package impl

import "sync"

// userLocker serializes token rotation per user within this process. The
// database row lock covers cross-process races; this keeps the common case
// of concurrent logins on one instance from ever reaching the database in
// parallel. Entries are reference counted and removed once the last holder
// releases, so the map only holds users with rotation in flight.
type userLocker struct {
	mu    sync.Mutex
	locks map[int64]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocker() *userLocker {
	return &userLocker{locks: make(map[int64]*userLock)}
}

// Lock acquires the mutex for the user and returns its release function.
func (l *userLocker) Lock(userID int64) func() {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
