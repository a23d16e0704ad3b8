package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLockSerializesSameKey(t *testing.T) {
	locks := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("like:user:1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestKeyedLockIndependentKeys(t *testing.T) {
	locks := New()

	unlockA := locks.Lock("a")
	// a held lock on one key must not block another key
	unlockB := locks.Lock("b")

	unlockB()
	unlockA()
}
