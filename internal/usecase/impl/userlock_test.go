package impl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserLocker_SerializesPerUser(t *testing.T) {
	locker := newUserLocker()

	const goroutines = 16
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for range goroutines {
		go func() {
			defer wg.Done()

			unlock := locker.Lock(42)
			defer unlock()

			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestUserLocker_ReleasesEntries(t *testing.T) {
	locker := newUserLocker()

	unlockA := locker.Lock(1)
	unlockB := locker.Lock(2)

	locker.mu.Lock()
	assert.Len(t, locker.locks, 2)
	locker.mu.Unlock()

	unlockA()
	unlockB()

	locker.mu.Lock()
	assert.Empty(t, locker.locks)
	locker.mu.Unlock()
}

func TestUserLocker_IndependentUsers(t *testing.T) {
	locker := newUserLocker()

	unlockA := locker.Lock(1)
	defer unlockA()

	// A different user's lock must not block behind user 1.
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(2)
		unlockB()
		close(done)
	}()

	<-done
}
