package split

import (
	"errors"
	"math"
	"sort"
)

// ErrInvalidProportion is returned when the split proportion is outside
// (0,1) or the id list is empty.
var ErrInvalidProportion = errors.New("split: proportion must be in (0,1) over a non-empty id list")

// Split partitions ids into disjoint (train, test) sets.
//
// The training side receives round(p × len(ids)) ids, clamped so both
// sides keep at least one element. Membership is decided by a seeded
// Fisher–Yates shuffle of a copy of ids; both returned slices are sorted
// ascending. The input slice is not modified.
//
// Same seed and same input order always yield the same partition
// (seed==0 selects a fixed default stream).
//
// Complexity: O(n log n) time, O(n) space.
func Split(ids []string, p float64, seed int64) (train, test []string, err error) {
	// n < 2 cannot satisfy "both sides non-empty".
	n := len(ids)
	if n < 2 || p <= 0 || p >= 1 || math.IsNaN(p) {
		return nil, nil, ErrInvalidProportion
	}

	nTrain := int(math.Round(p * float64(n)))
	if nTrain < 1 {
		nTrain = 1
	}
	if nTrain > n-1 {
		nTrain = n - 1
	}

	shuffled := make([]string, n)
	copy(shuffled, ids)
	shuffleStringsInPlace(shuffled, RNG(seed))

	train = shuffled[:nTrain]
	test = shuffled[nTrain:]
	sort.Strings(train)
	sort.Strings(test)

	return train, test, nil
}
