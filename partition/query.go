package partition

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// MaxN is the largest n whose p(n) fits in an int64.
const MaxN int32 = 405

// Query asks for the partitions of N. A zero K asks for all of them.
type Query struct {
	N int32
	K int32
}

// Total reports whether q asks for p(N) rather than an exact part count.
func (q Query) Total() bool {
	return q.K == 0
}

// Run answers q with c.
func (q Query) Run(c *Counter) int64 {
	if q.Total() {
		return c.Total(q.N)
	}
	return c.Count(q.N, q.K)
}

// ParseQuery builds a Query from decimal arguments n and an optional k.
// Every problem with the arguments is reported, combined into one error.
func ParseQuery(args []string) (Query, error) {
	if len(args) == 0 {
		return Query{}, fmt.Errorf("%w: n is required", ErrMissingArgument)
	}

	var (
		q    Query
		errs error
	)
	n, err := parseArg("n", args[0])
	if err == nil {
		err = Validate(n, nil)
	}
	errs = multierr.Append(errs, err)

	if len(args) > 1 {
		k, err := parseArg("k", args[1])
		if err == nil {
			err = validateK(k)
		}
		errs = multierr.Append(errs, err)
		q.K = int32(k)
	}
	if errs != nil {
		return Query{}, errs
	}
	q.N = int32(n)
	return q, nil
}

// Validate checks n, and k when given, against the counting domain:
// 0 <= n <= MaxN and k >= 1.
func Validate(n int64, k *int64) error {
	var err error
	switch {
	case n < 0:
		err = fmt.Errorf("%w: n must be non-negative, got %d", ErrOutOfDomain, n)
	case n > int64(MaxN):
		err = fmt.Errorf("%w: n must be at most %d, got %d", ErrOutOfRange, MaxN, n)
	}
	if k != nil {
		err = multierr.Append(err, validateK(*k))
	}
	return err
}

func validateK(k int64) error {
	if k < 1 {
		return fmt.Errorf("%w: k must be positive, got %d", ErrOutOfDomain, k)
	}
	// Anything above MaxN already exceeds n and counts as zero.
	return nil
}

func parseArg(name, s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a 32-bit integer", ErrMalformedArgument, name, s)
	}
	return v, nil
}
