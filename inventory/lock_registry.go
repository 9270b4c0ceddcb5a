package inventory

import (
	"sync"
)

type lockRegistry struct {
	locks sync.Map
}

var lr *lockRegistry
var once sync.Once

func GetLockRegistry() *lockRegistry {
	once.Do(func() {
		lr = &lockRegistry{}
	})
	return lr
}

// GetBySource returns the lock guarding the seek and read cursor of a memory source.
func (r *lockRegistry) GetBySource(source string) *sync.Mutex {
	val, _ := r.locks.LoadOrStore(source, &sync.Mutex{})
	return val.(*sync.Mutex)
}
