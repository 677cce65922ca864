// Package hashMap implements a separate-chaining hash map with string keys.
//
// Every bucket owns a singly-linked chain of links. The table doubles its
// bucket count before an insert of a new key would push the load factor to
// maxTableLoad, so the load stays below it after every Put. The map never
// shrinks. It is not safe for concurrent use.
package hashMap

const maxTableLoad = .75

type link[V any] struct {
	key 	string
	value 	V
	next 	*link[V]
}

type HashMap[V any] struct {
	table 		[]*link[V]
	size 		int
	capacity 	int
	hash 		HashFunc
}

type Option func(*options)

type options struct {
	hash HashFunc
}

// WithHashFunc replaces the default CharSum hashing strategy.
func WithHashFunc(h HashFunc) Option {
	return func(o *options) {
		if h != nil {
			o.hash = h
		}
	}
}

// New returns an empty map with the given number of buckets.
// A capacity below 1 is a programming error and panics.
func New[V any](capacity int, opts ...Option) *HashMap[V] {
	if capacity < 1 {
		panic("hashMap: capacity must be at least 1")
	}
	o := options{hash: CharSum}
	for _, opt := range opts {
		opt(&o)
	}
	return &HashMap[V]{
		table: 		make([]*link[V], capacity),
		capacity: 	capacity,
		hash: 		o.hash,
	}
}

func (m *HashMap[V]) bucketIndex(key string, capacity int) int {
	idx := int(m.hash(key)) % capacity
	if idx < 0 {
		idx += capacity
	}
	return idx
}

func (m *HashMap[V]) find(key string) *link[V] {
	for l := m.table[m.bucketIndex(key, m.capacity)]; l != nil; l = l.next {
		if l.key == key {
			return l
		}
	}
	return nil
}

// Get returns the value stored under key and whether it was found.
func (m *HashMap[V]) Get(key string) (V, bool) {
	if l := m.find(key); l != nil {
		return l.value, true
	}
	var zero V
	return zero, false
}

func (m *HashMap[V]) Contains(key string) bool {
	return m.find(key) != nil
}

// Put stores value under key. An existing key is updated in place and does
// not count towards the load; a new key is appended to the tail of its chain.
func (m *HashMap[V]) Put(key string, value V) {
	if l := m.find(key); l != nil {
		l.value = value
		return
	}

	if float64(m.size + 1) >= maxTableLoad * float64(m.capacity) {
		newCap := m.capacity * 2
		for float64(m.size + 1) >= maxTableLoad * float64(newCap) {
			newCap *= 2
		}
		m.Resize(newCap)
	}

	appendLink(m.table, m.bucketIndex(key, m.capacity), &link[V]{key: key, value: value})
	m.size++
}

// Remove deletes key from the map and reports whether it was present.
func (m *HashMap[V]) Remove(key string) bool {
	idx := m.bucketIndex(key, m.capacity)
	for p := &m.table[idx]; *p != nil; p = &(*p).next {
		if (*p).key == key {
			*p = (*p).next
			m.size--
			return true
		}
	}
	return false
}

// Resize rehashes every link into a fresh table of newCapacity buckets.
// Links are migrated in traversal order, so relative chain order of keys
// that land in the same new bucket is preserved. The load threshold is not
// checked here.
func (m *HashMap[V]) Resize(newCapacity int) {
	if newCapacity <= 0 {
		panic("hashMap: resize to non-positive capacity")
	}

	table := make([]*link[V], newCapacity)
	tails := make([]*link[V], newCapacity)
	for _, head := range m.table {
		for l := head; l != nil; {
			next := l.next
			l.next = nil
			idx := m.bucketIndex(l.key, newCapacity)
			if tails[idx] == nil {
				table[idx] = l
			} else {
				tails[idx].next = l
			}
			tails[idx] = l
			l = next
		}
	}

	m.table = table
	m.capacity = newCapacity
}

func appendLink[V any](table []*link[V], idx int, l *link[V]) {
	if table[idx] == nil {
		table[idx] = l
		return
	}
	tail := table[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = l
}

func (m *HashMap[V]) Size() int {
	return m.size
}

func (m *HashMap[V]) Capacity() int {
	return m.capacity
}

// EmptyBuckets counts buckets without a chain.
func (m *HashMap[V]) EmptyBuckets() int {
	empty := 0
	for _, head := range m.table {
		if head == nil {
			empty++
		}
	}
	return empty
}

// TableLoad is size divided by capacity.
func (m *HashMap[V]) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}
