package partition

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Counter counts partitions. The zero value is not usable; call New.
type Counter struct {
	memoThreshold int32
	logger        *zap.Logger
}

// New returns a Counter with the given options applied over the defaults.
func New(opts ...Option) *Counter {
	c := &Counter{
		memoThreshold: DefaultMemoThreshold,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MemoThreshold returns the smallest m this Counter memoizes.
func (c *Counter) MemoThreshold() int32 {
	return c.memoThreshold
}

// Count returns the number of partitions of n into exactly k parts using a
// fresh Memo. n must be >= 0 and k >= 1.
func (c *Counter) Count(n, k int32) int64 {
	memo := NewMemo()
	res := c.CountWith(n, k, memo)
	c.logQuery("count", n, k, res, memo)
	return res
}

// CountWith is Count with a caller-owned Memo.
func (c *Counter) CountWith(n, k int32, memo *Memo) int64 {
	return c.accumulate(n, k, 0, memo)
}

// Total returns p(n), the number of partitions of n into any number of parts.
// One Memo is shared across every k. Total(0) is 0.
func (c *Counter) Total(n int32) int64 {
	memo := NewMemo()
	res := c.TotalWith(n, memo)
	c.logQuery("total", n, 0, res, memo)
	return res
}

// TotalWith is Total with a caller-owned Memo.
func (c *Counter) TotalWith(n int32, memo *Memo) int64 {
	if n == 0 {
		return 0
	}
	var p int64
	for k := int32(1); k <= n; k++ {
		p += c.CountWith(n, k, memo)
	}
	return p
}

// accumulate returns acc plus the number of partitions of n into exactly k
// parts. Recursive calls always satisfy k <= n, so the k > n case never
// discards a non-zero acc.
func (c *Counter) accumulate(n, k int32, acc int64, memo *Memo) int64 {
	if k > n {
		return 0
	}
	if n == k || k == 1 {
		return acc + 1
	}
	if k == 2 {
		return acc + int64(n/k)
	}

	m := n - k
	last := acc
	for i := k; i >= 1; i-- {
		if i > m {
			continue
		}
		if c.nonTrivial(m, i) {
			acc = c.accumulateMemoized(m, i, acc, last, memo)
		} else {
			acc = c.accumulate(m, i, acc, memo)
		}
		last = acc
	}
	return acc
}

// accumulateMemoized adds the (m, i) term to acc. The memo holds the term's
// delta, the amount it adds on top of last, never an absolute running sum.
func (c *Counter) accumulateMemoized(m, i int32, acc, last int64, memo *Memo) int64 {
	tag := NewTag(m, i)
	if delta, ok := memo.Load(tag); ok {
		return last + delta
	}
	acc = c.accumulate(m, i, acc, memo)
	memo.StoreIfAbsent(tag, acc-last)
	return acc
}

// nonTrivial reports whether subproblem (m, i) is worth memoizing.
func (c *Counter) nonTrivial(m, i int32) bool {
	return i != 1 && i != 2 && i != m && m >= c.memoThreshold
}

func (c *Counter) logQuery(op string, n, k int32, res int64, memo *Memo) {
	if ce := c.logger.Check(zap.DebugLevel, "partition query done"); ce != nil {
		stats := memo.Stats()
		ce.Write(
			zap.String("query_id", uuid.New().String()),
			zap.String("op", op),
			zap.Int32("n", n),
			zap.Int32("k", k),
			zap.Int64("result", res),
			zap.Int("memo_entries", stats.Entries),
			zap.Uint64("memo_hits", stats.Hits),
			zap.Uint64("memo_misses", stats.Misses),
		)
	}
}
