package lasso

import (
	"math"
	"sort"
)

// Sign labels which side of zero a ranked coefficient sits on.
type Sign int

const (
	// Positive coefficients push predictions toward the target group.
	Positive Sign = iota

	// Negative coefficients push predictions away from it.
	Negative
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	if s == Positive {
		return "positive"
	}

	return "negative"
}

// RankedCoefficient is one term's estimate at a chosen lambda, tagged by
// sign group.
type RankedCoefficient struct {
	Term     string
	Estimate float64
	Sign     Sign
}

// TopTerms ranks the coefficients of a fitted point, typically the one
// at Lambda1SE.
//
// The intercept is excluded by construction (it never enters Coef). The
// non-zero coefficients split into sign groups; each group keeps its
// top n by absolute magnitude, and the merged result is sorted
// descending by signed estimate (strongest positive first, strongest
// negative last), ties broken by term.
//
// n ≤ 0 keeps every coefficient. A nil point yields nil.
func TopTerms(pt *Point, n int) []RankedCoefficient {
	if pt == nil {
		return nil
	}

	var positive, negative []RankedCoefficient
	for term, b := range pt.Coef {
		rc := RankedCoefficient{Term: term, Estimate: b, Sign: Positive}
		if b < 0 {
			rc.Sign = Negative
			negative = append(negative, rc)
		} else {
			positive = append(positive, rc)
		}
	}

	byMagnitude := func(s []RankedCoefficient) {
		sort.Slice(s, func(i, j int) bool {
			ai, aj := math.Abs(s[i].Estimate), math.Abs(s[j].Estimate)
			if ai != aj {
				return ai > aj
			}

			return s[i].Term < s[j].Term
		})
	}
	byMagnitude(positive)
	byMagnitude(negative)
	if n > 0 {
		if len(positive) > n {
			positive = positive[:n]
		}
		if len(negative) > n {
			negative = negative[:n]
		}
	}

	out := append(positive, negative...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Estimate != out[j].Estimate {
			return out[i].Estimate > out[j].Estimate
		}

		return out[i].Term < out[j].Term
	})

	return out
}

// Lookup returns term's estimate at the fitted point. A term absent from
// the training vocabulary (or shrunk to exactly zero) reports (0, false)
// — that is a missing coefficient, not an error.
func Lookup(pt *Point, term string) (float64, bool) {
	if pt == nil {
		return 0, false
	}
	b, ok := pt.Coef[term]

	return b, ok
}
