package session

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestNewIDIsUUID(t *testing.T) {
	id := NewID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("NewID() = %q, not a UUID: %v", id, err)
	}
	if NewID() == id {
		t.Error("NewID() returned the same ID twice")
	}
}

func TestLocksSerializeSameSession(t *testing.T) {
	locks := NewLocks()

	const workers = 8
	const rounds = 200

	counter := 0
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				unlock := locks.Lock("game")
				// Non-atomic read-modify-write; only safe under the session lock
				v := counter
				counter = v + 1
				unlock()
			}
		}()
	}
	wg.Wait()

	if counter != workers*rounds {
		t.Errorf("counter = %d, want %d", counter, workers*rounds)
	}
	if locks.Count() != 0 {
		t.Errorf("Count() = %d after all unlocks, want 0", locks.Count())
	}
}

func TestLocksIndependentSessions(t *testing.T) {
	locks := NewLocks()

	unlockA := locks.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("b")
		unlockB()
		close(done)
	}()

	// Would deadlock if sessions shared a lock
	<-done

	if locks.Count() != 1 {
		t.Errorf("Count() = %d, want 1", locks.Count())
	}
}

func TestUnlockIdempotent(t *testing.T) {
	locks := NewLocks()

	unlock := locks.Lock("x")
	unlock()
	unlock()

	// Lock must still be acquirable after a double unlock
	again := locks.Lock("x")
	again()

	if locks.Count() != 0 {
		t.Errorf("Count() = %d, want 0", locks.Count())
	}
}
