package extract

import "sync"

// Collector is a set of address strings. It is safe for concurrent use.
type Collector struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add inserts address. Adding an address already present is a no-op.
func (c *Collector) Add(address string) {
	c.mu.Lock()
	c.seen[address] = struct{}{}
	c.mu.Unlock()
}

// Len returns the number of unique addresses.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

// All returns the unique addresses in no particular order.
func (c *Collector) All() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.seen))
	for a := range c.seen {
		out = append(out, a)
	}
	return out
}
