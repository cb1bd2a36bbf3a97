package core

// Scratch is the shared reduction buffer of one worker group. It holds one
// slot per lane and is only touched between barrier rounds.
type Scratch struct {
	slots   []uint64
	barrier *Barrier
}

// NewScratch allocates a zeroed buffer for lanes workers.
func NewScratch(lanes int) *Scratch {
	return &Scratch{
		slots:   make([]uint64, lanes),
		barrier: NewBarrier(lanes),
	}
}

// Lanes returns the group size.
func (s *Scratch) Lanes() int {
	return len(s.slots)
}

// Store publishes a lane's local count.
func (s *Scratch) Store(lane int, v uint64) {
	s.slots[lane] = v
}

// Reduce runs the halving tree reduction from the point of view of one lane.
// Every lane of the group must call it after Store. Lane 0 gets the group
// total and true; the others get false.
//
// Groups that are not a power of two are padded up to the next one; lanes
// whose partner falls outside the group skip the add.
func (s *Scratch) Reduce(lane int) (uint64, bool) {
	n := len(s.slots)
	s.barrier.Wait()
	for step := ceilPow2(n) / 2; step > 0; step /= 2 {
		if lane < step && lane+step < n {
			s.slots[lane] += s.slots[lane+step]
		}
		s.barrier.Wait()
	}
	if lane == 0 {
		return s.slots[0], true
	}
	return 0, false
}

// CombinePartials sums the group partials on the host.
func CombinePartials(partials []uint64) uint64 {
	total := uint64(0)
	for _, p := range partials {
		total += p
	}
	return total
}

func ceilPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
