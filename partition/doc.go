// Package partition counts integer partitions.
//
// A partition of n is a multiset of positive integers summing to n. The
// package answers two questions:
//
//   - Count: how many partitions of n have exactly k parts.
//   - Total: how many partitions of n there are over all k, the partition
//     function p(n).
//
// Counting is a pure recursion over (n, k) subproblems backed by a Memo that
// lives for one top-level query. Only subproblems large enough to be worth it
// are memoized; the threshold is a Counter option rather than process state.
//
// The memo stores the marginal contribution of a single (m, i) term to the
// running sum, not an absolute count, so a Memo must only be shared between
// queries issued by the same Counter configuration.
//
// Results are int64. p(n) stops fitting at n > MaxN; Validate rejects such
// inputs at the boundary.
//
// Total(0) is 0, not the conventional p(0) = 1.
package partition
