package split_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/andrewheiss/tidytext-pos-john/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docIDs returns n synthetic document ids in a fixed order.
func docIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("doc-%03d", i)
	}

	return ids
}

// TestSplit_ReferenceRounding pins the documented policy: 100 ids at
// p=0.75 give exactly 75 training ids, reproducibly.
func TestSplit_ReferenceRounding(t *testing.T) {
	train1, test1, err := split.Split(docIDs(100), 0.75, 1234)
	require.NoError(t, err)
	assert.Len(t, train1, 75)
	assert.Len(t, test1, 25)

	train2, test2, err := split.Split(docIDs(100), 0.75, 1234)
	require.NoError(t, err)
	assert.Equal(t, train1, train2, "same seed and input ⇒ same partition")
	assert.Equal(t, test1, test2)
}

// TestSplit_DisjointExhaustive verifies the partition laws: the two
// sides are disjoint and their union is the input set.
func TestSplit_DisjointExhaustive(t *testing.T) {
	ids := docIDs(37)
	train, test, err := split.Split(ids, 0.6, 7)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, id := range train {
		seen[id]++
	}
	for _, id := range test {
		seen[id]++
	}
	require.Len(t, seen, len(ids), "union covers every id")
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s must appear on exactly one side", id)
	}
}

// TestSplit_OutputSorted checks that both sides come back sorted, so
// downstream row order does not depend on shuffle internals.
func TestSplit_OutputSorted(t *testing.T) {
	train, test, err := split.Split(docIDs(20), 0.5, 99)
	require.NoError(t, err)
	assert.True(t, sort.StringsAreSorted(train))
	assert.True(t, sort.StringsAreSorted(test))
}

// TestSplit_SeedChangesPartition: different seeds should (for any
// non-trivial input) produce different partitions.
func TestSplit_SeedChangesPartition(t *testing.T) {
	ids := docIDs(50)
	trainA, _, err := split.Split(ids, 0.5, 1)
	require.NoError(t, err)
	trainB, _, err := split.Split(ids, 0.5, 2)
	require.NoError(t, err)
	assert.NotEqual(t, trainA, trainB)
}

// TestSplit_ZeroSeedIsFixedDefault: seed 0 is a stable default stream,
// not a timed source.
func TestSplit_ZeroSeedIsFixedDefault(t *testing.T) {
	a, _, err := split.Split(docIDs(30), 0.5, 0)
	require.NoError(t, err)
	b, _, err := split.Split(docIDs(30), 0.5, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSplit_ClampKeepsBothSidesNonEmpty: extreme proportions still leave
// at least one id on each side.
func TestSplit_ClampKeepsBothSidesNonEmpty(t *testing.T) {
	train, test, err := split.Split(docIDs(10), 0.999, 3)
	require.NoError(t, err)
	assert.Len(t, train, 9, "round(9.99)=10 clamps to n-1")
	assert.Len(t, test, 1)

	train, test, err = split.Split(docIDs(10), 0.001, 3)
	require.NoError(t, err)
	assert.Len(t, train, 1, "round(0.01)=0 clamps to 1")
	assert.Len(t, test, 9)
}

// TestSplit_InvalidInputs covers the ErrInvalidProportion taxonomy.
func TestSplit_InvalidInputs(t *testing.T) {
	for name, tc := range map[string]struct {
		ids []string
		p   float64
	}{
		"empty ids":     {nil, 0.5},
		"single id":     {[]string{"only"}, 0.5},
		"p zero":        {docIDs(5), 0},
		"p one":         {docIDs(5), 1},
		"p negative":    {docIDs(5), -0.3},
		"p above one":   {docIDs(5), 1.5},
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := split.Split(tc.ids, tc.p, 1)
			assert.ErrorIs(t, err, split.ErrInvalidProportion)
		})
	}
}

// TestSplit_InputNotMutated ensures Split works on a copy.
func TestSplit_InputNotMutated(t *testing.T) {
	ids := docIDs(15)
	orig := append([]string(nil), ids...)
	_, _, err := split.Split(ids, 0.4, 8)
	require.NoError(t, err)
	assert.Equal(t, orig, ids)
}
