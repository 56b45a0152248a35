package tfidf_test

import (
	"fmt"
	"testing"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/andrewheiss/tidytext-pos-john/tfidf"
)

// benchCounts builds g groups × l lemmas of synthetic count records.
func benchCounts(g, l int) []corpus.CountRecord {
	recs := make([]corpus.CountRecord, 0, g*l)
	for gi := 0; gi < g; gi++ {
		for li := 0; li < l; li++ {
			recs = append(recs, corpus.CountRecord{
				Group: fmt.Sprintf("group-%02d", gi),
				Lemma: fmt.Sprintf("lemma-%04d", (li+gi)%l),
				POS:   "NOUN",
				Count: 1 + (gi*li)%17,
			})
		}
	}

	return recs
}

func BenchmarkScore(b *testing.B) {
	recs := benchCounts(8, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tfidf.Score(recs)
	}
}

func BenchmarkFilterRank(b *testing.B) {
	scored := tfidf.Score(benchCounts(8, 2000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tfidf.FilterRank(scored, "NOUN", "group-00")
	}
}
