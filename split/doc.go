// Package split partitions document ids into disjoint training and test
// sets by a fixed proportion, reproducibly.
//
// Policy:
//   - nTrain = round(p × n), then clamped to [1, n-1] so neither side is
//     ever empty (documented rounding: 100 ids at p=0.75 ⇒ 75 train).
//   - membership is decided by a seeded Fisher–Yates shuffle of a copy of
//     the input; the original slice is never touched.
//   - both returned sides are sorted ascending, so downstream row order
//     is stable regardless of the shuffle's internal order.
//   - same seed + same input order ⇒ identical partition, every time.
//     seed == 0 selects a fixed default seed rather than a timed source.
//
// Errors:
//   - ErrInvalidProportion — p outside the open interval (0,1), or fewer
//     than two ids (a singleton cannot fill both sides).
package split
