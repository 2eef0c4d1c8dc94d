package num

// RandSource is satisfied by *math/rand.Rand, among others.
type RandSource interface {
	Uint64() uint64
}

// CompareI128 returns a.Cmp(b). It has the signature expected by sort and
// slices helpers that take a three-way comparator.
func CompareI128(a, b I128) int { return a.Cmp(b) }

// CompareI128Unsigned orders a and b by their two's complement bit patterns,
// so every negative value sorts after MaxI128.
func CompareI128Unsigned(a, b I128) int { return a.CmpUnsigned(b) }

// I128Slice attaches the methods of sort.Interface to []I128, sorting in
// increasing signed order.
type I128Slice []I128

func (s I128Slice) Len() int           { return len(s) }
func (s I128Slice) Less(i, j int) bool { return s[i].LessThan(s[j]) }
func (s I128Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// MaxI128Of returns the largest of its arguments.
func MaxI128Of(first I128, rest ...I128) I128 {
	for _, v := range rest {
		if v.GreaterThan(first) {
			first = v
		}
	}
	return first
}

// MinI128Of returns the smallest of its arguments.
func MinI128Of(first I128, rest ...I128) I128 {
	for _, v := range rest {
		if v.LessThan(first) {
			first = v
		}
	}
	return first
}

// DifferenceI128 subtracts the smaller of a and b from the larger. The result
// is the distance between them modulo 1<<128; use DifferenceI128U if a and b
// may be more than MaxI128 apart.
func DifferenceI128(a, b I128) I128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}

// DifferenceI128U is DifferenceI128, but returns the exact distance as a U128.
// The distance between MinI128 and MaxI128 is MaxU128.
func DifferenceI128U(a, b I128) U128 {
	return DifferenceI128(a, b).AsU128()
}

// DifferenceU128 subtracts the smaller of a and b from the larger.
func DifferenceU128(a, b U128) U128 {
	if a.LessThan(b) {
		return b.Sub(a)
	}
	return a.Sub(b)
}
