package app

import (
	"sync"
	"testing"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes the same key", func(t *testing.T) {
		k := newKeyedMutex()
		var wg sync.WaitGroup
		counter := 0

		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := k.Lock("cart-1")
				defer unlock()
				counter++
			}()
		}
		wg.Wait()

		if counter != 50 {
			t.Fatalf("expected 50, got %d", counter)
		}
	})

	t.Run("forgets released keys", func(t *testing.T) {
		k := newKeyedMutex()
		k.Lock("a")()
		k.Lock("b")()
		if len(k.locks) != 0 {
			t.Fatalf("expected no tracked keys, got %d", len(k.locks))
		}
	})

	t.Run("distinct keys do not block each other", func(t *testing.T) {
		k := newKeyedMutex()
		unlockA := k.Lock("a")
		unlockB := k.Lock("b")
		unlockB()
		unlockA()
	})
}
