package tfidf_test

import (
	"fmt"

	"github.com/andrewheiss/tidytext-pos-john/corpus"
	"github.com/andrewheiss/tidytext-pos-john/tfidf"
)

// ExampleFilterRank scores a four-group corpus and ranks the nouns of
// group A. The lemma "x" lives only in A (idf = ln 4); "the" is in all
// four groups, so its tf-idf collapses to zero.
func ExampleFilterRank() {
	counts := []corpus.CountRecord{
		{Group: "A", Lemma: "x", POS: "NOUN", Count: 80},
		{Group: "A", Lemma: "the", POS: "NOUN", Count: 420},
		{Group: "B", Lemma: "the", POS: "NOUN", Count: 300},
		{Group: "C", Lemma: "the", POS: "NOUN", Count: 250},
		{Group: "D", Lemma: "the", POS: "NOUN", Count: 200},
	}

	for _, r := range tfidf.FilterRank(tfidf.Score(counts), "NOUN", "A") {
		fmt.Printf("#%d %-4s tf=%.4f idf=%.4f tf_idf=%.4f\n", r.Rank, r.Lemma, r.TF, r.IDF, r.TfIdf)
	}
	// Output:
	// #1 x    tf=0.1600 idf=1.3863 tf_idf=0.2218
	// #2 the  tf=0.8400 idf=0.0000 tf_idf=0.0000
}
