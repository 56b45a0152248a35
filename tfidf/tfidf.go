package tfidf

import (
	"math"
	"sort"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
)

// Record extends a CountRecord with its tf-idf decomposition.
// Invariant: TfIdf == TF * IDF.
type Record struct {
	corpus.CountRecord

	// TF is Count divided by the total token count of the record's group.
	TF float64

	// IDF is ln(total groups / groups containing the lemma). Zero iff the
	// lemma appears in every group.
	IDF float64

	// TfIdf is the product TF * IDF.
	TfIdf float64
}

// RankedRecord is a Record with a dense rank assigned after filtering.
// Rank 1 is the highest tf-idf; equal tf-idf values share a rank.
type RankedRecord struct {
	Record

	Rank int
}

// Score converts grouped counts into tf-idf records.
//
// tf is computed per (group, lemma, pos) cell against the group's total
// token count. Document frequency is per lemma: a lemma counts toward a
// group if it appears there with any part of speech, so all pos variants
// of one lemma share an idf.
//
// The result is sorted descending by TfIdf, ties broken by lemma, then
// part of speech, then group, ascending — rerunning Score on the same
// input yields identical ordering and values.
//
// Complexity: O(n log n) in the number of count records.
func Score(records []corpus.CountRecord) []Record {
	// Group totals and per-lemma group presence in one pass.
	groupTotal := make(map[string]int)
	lemmaGroups := make(map[string]map[string]bool)
	for _, r := range records {
		groupTotal[r.Group] += r.Count
		gs, ok := lemmaGroups[r.Lemma]
		if !ok {
			gs = make(map[string]bool)
			lemmaGroups[r.Lemma] = gs
		}
		gs[r.Group] = true
	}
	numGroups := float64(len(groupTotal))

	out := make([]Record, 0, len(records))
	for _, r := range records {
		tf := float64(r.Count) / float64(groupTotal[r.Group])
		idf := math.Log(numGroups / float64(len(lemmaGroups[r.Lemma])))
		out = append(out, Record{
			CountRecord: r,
			TF:          tf,
			IDF:         idf,
			TfIdf:       tf * idf,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.TfIdf != b.TfIdf {
			return a.TfIdf > b.TfIdf
		}
		if a.Lemma != b.Lemma {
			return a.Lemma < b.Lemma
		}
		if a.POS != b.POS {
			return a.POS < b.POS
		}

		return a.Group < b.Group
	})

	return out
}

// FilterRank selects the records matching both pos and group, preserving
// Score's descending tf-idf order, and assigns a dense rank starting at 1
// (equal tf-idf ⇒ equal rank; the next distinct value gets the next rank).
//
// records must be Score output (already sorted); FilterRank does not re-sort.
func FilterRank(records []Record, pos, group string) []RankedRecord {
	var out []RankedRecord
	rank := 0
	for _, r := range records {
		if r.POS != pos || r.Group != group {
			continue
		}
		if len(out) == 0 || r.TfIdf != out[len(out)-1].TfIdf {
			rank++
		}
		out = append(out, RankedRecord{Record: r, Rank: rank})
	}

	return out
}
