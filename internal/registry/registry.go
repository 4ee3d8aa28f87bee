// Package registry tracks live array allocations so they can be released in
// bulk at interpreter teardown.
package registry

// Registry is a process-wide set of live allocations.
type Registry struct {
	live  map[uint]int
	total int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{live: make(map[uint]int)}
}

// Track records a new live allocation of size words starting at addr.
func (r *Registry) Track(addr uint, size int) {
	r.live[addr] = size
	r.total++
}

// Release removes addr from the live set, a no-op if it isn't tracked.
func (r *Registry) Release(addr uint) {
	delete(r.live, addr)
}

// Count returns the number of currently live allocations.
func (r *Registry) Count() int { return len(r.live) }

// Total returns the number of allocations ever tracked, live or not.
func (r *Registry) Total() int { return r.total }

// Teardown releases every live allocation, returning how many there were.
func (r *Registry) Teardown() int {
	n := len(r.live)
	r.live = make(map[uint]int)
	return n
}
