package lasso_test

import (
	"testing"

	"github.com/andrewheiss/tidytext-pos-john/lasso"
)

func BenchmarkFit(b *testing.B) {
	m, y, _ := signalCorpus(b, 50)
	o := lasso.DefaultOptions()
	o.NLambda = 50
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lasso.Fit(m, y, &o); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCrossValidate(b *testing.B) {
	m, y, _ := signalCorpus(b, 50)
	o := lasso.DefaultOptions()
	o.NLambda = 30
	o.Folds = 5
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lasso.CrossValidate(m, y, &o); err != nil {
			b.Fatal(err)
		}
	}
}
