// Package pure memoizes pure functions by their arguments.
//
// A tableized function behaves like a lazily filled table: every distinct
// argument tuple is computed once and looked up afterwards. The table is
// unbounded and owned by the returned closure, so it must not be shared
// between goroutines.
//
// WARNING: Do not tableize impure functions (time, I/O, shared state).
package pure

func TableizeI1O1[I1 comparable, O1 any](pureFn func(I1) O1) func(I1) O1 {
	table := make(map[I1]O1)
	return func(i1 I1) O1 {
		if v, ok := table[i1]; ok {
			return v
		}
		v := pureFn(i1)
		table[i1] = v
		return v
	}
}

type args2[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

// TableizeI2O1 memoizes a two-argument pure function. pureFn may call the
// returned function recursively.
func TableizeI2O1[I1, I2 comparable, O1 any](pureFn func(I1, I2) O1) func(I1, I2) O1 {
	table := make(map[args2[I1, I2]]O1)
	return func(i1 I1, i2 I2) O1 {
		key := args2[I1, I2]{i1, i2}
		if v, ok := table[key]; ok {
			return v
		}
		v := pureFn(i1, i2)
		table[key] = v
		return v
	}
}
