package partition

// Tag identifies a normalized (m, i) subproblem in a Memo.
//
// It is half of Szudzik's pairing function, m*m + m + i, which is collision
// free for pairs with m >= i >= 0.
type Tag int64

// NewTag returns the Tag of subproblem (m, i). Callers guarantee m >= i >= 0.
func NewTag(m, i int32) Tag {
	mm := int64(m)
	return Tag(mm*mm + mm + int64(i))
}

// MemoStats reports how a Memo was used during a query.
type MemoStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// Memo caches per-term deltas of non-trivial subproblems.
//
// The tag is its own hash. A Memo has no eviction and is not safe for
// concurrent use; it belongs to a single query.
type Memo struct {
	deltas map[Tag]int64
	hits   uint64
	misses uint64
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{deltas: make(map[Tag]int64)}
}

// Load returns the delta stored under tag.
func (m *Memo) Load(tag Tag) (int64, bool) {
	delta, ok := m.deltas[tag]
	if ok {
		m.hits++
	} else {
		m.misses++
	}
	return delta, ok
}

// StoreIfAbsent records delta under tag unless a delta is already there.
func (m *Memo) StoreIfAbsent(tag Tag, delta int64) {
	if _, ok := m.deltas[tag]; !ok {
		m.deltas[tag] = delta
	}
}

// Len returns the number of memoized subproblems.
func (m *Memo) Len() int {
	return len(m.deltas)
}

func (m *Memo) Stats() MemoStats {
	return MemoStats{
		Entries: len(m.deltas),
		Hits:    m.hits,
		Misses:  m.misses,
	}
}
