package partition

import "github.com/on-the-ground/partitions/pure"

// Reference counts partitions of n into exactly k parts with the textbook
// recurrence p(n, k) = p(n-1, k-1) + p(n-k, k). It shares nothing with
// Counter and serves as an independent oracle.
func Reference(n, k int32) int64 {
	var p func(int32, int32) int64
	p = pure.TableizeI2O1(func(n, k int32) int64 {
		switch {
		case k == 0 && n == 0:
			return 1
		case k <= 0 || k > n:
			return 0
		}
		return p(n-1, k-1) + p(n-k, k)
	})
	return p(n, k)
}
