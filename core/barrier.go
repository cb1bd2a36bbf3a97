package core

import "sync"

// Barrier blocks a fixed number of parties until all of them have arrived.
// It can be reused for any number of rounds.
type Barrier struct {
	mutex      sync.Mutex
	cond       *sync.Cond
	parties    int
	waiting    int
	generation uint64
}

// NewBarrier creates a barrier for parties goroutines.
func NewBarrier(parties int) *Barrier {
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mutex)
	return b
}

// Wait blocks until every party of the current round has called Wait.
func (b *Barrier) Wait() {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	gen := b.generation
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.generation++
		b.cond.Broadcast()
		return
	}
	for gen == b.generation {
		b.cond.Wait()
	}
}
