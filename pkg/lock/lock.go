package lock

import "sync"

// KeyedLock serializes writes per string key inside this process. The toggle
// usecases key it by (actor, target); the unique DB indexes on the relation
// tables remain the backstop.
type KeyedLock struct {
	locks sync.Map
}

// New create a KeyedLock
func New() *KeyedLock {
	return &KeyedLock{}
}

// Lock block until the key is held, the returned func releases it
func (l *KeyedLock) Lock(key string) func() {
	v, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
