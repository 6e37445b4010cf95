package cache

// Memo is an insert-if-absent table. Entries are created on first request
// and kept for the lifetime of the table.
//
// Memo is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	entries map[K]V
	hits    uint64
	misses  uint64
}

// Stats holds memo table statistics.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

// HitRate returns the fraction of lookups served from the table, or 0
// before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewMemo creates an empty table. sizeHint preallocates room for that many
// entries; 0 lets the map grow on demand.
func NewMemo[K comparable, V any](sizeHint int) *Memo[K, V] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Memo[K, V]{
		entries: make(map[K]V, sizeHint),
	}
}

// Get retrieves a value without creating it.
// Returns (value, true) if present, (zero, false) otherwise. Get does not
// change the statistics.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// GetOrCreate returns the stored value for key, calling create and storing
// its result on the first request. create is never called twice for the
// same key.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := m.entries[key]; ok {
		m.hits++
		return v
	}

	m.misses++
	v := create()
	m.entries[key] = v
	return v
}

// Len returns the number of entries in the table.
func (m *Memo[K, V]) Len() int {
	return len(m.entries)
}

// Stats returns table statistics.
func (m *Memo[K, V]) Stats() Stats {
	return Stats{
		Len:    len(m.entries),
		Hits:   m.hits,
		Misses: m.misses,
	}
}
