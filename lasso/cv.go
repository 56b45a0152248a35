package lasso

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/andrewheiss/tidytext-pos-john/sparse"
	"github.com/andrewheiss/tidytext-pos-john/split"
)

// CrossValidate fits the full-data path, then estimates out-of-sample
// binomial deviance at every lambda by k-fold cross-validation and
// selects LambdaMin and Lambda1SE.
//
// Fold assignment is a seeded shuffle of the row indices (Options.Seed;
// 0 means the fixed default stream) dealt round-robin, so every fold
// size differs by at most one row. Folds are refitted over the SAME
// lambda sequence as the full path and may run concurrently
// (Options.Workers); per-fold deviances land in fold-indexed slots and
// are reduced by plain averaging, so completion order cannot affect any
// result — Workers=1 and Workers=32 are bit-identical.
//
// Errors: everything Fit returns, plus ErrBadOptions for a fold count
// outside [2, rows] and ErrDegenerateLabels (wrapped with the fold) when
// a fold's training labels are constant.
func CrossValidate(m *sparse.Matrix, y []bool, opts *Options) (*CVResult, error) {
	o, err := opts.validate()
	if err != nil {
		return nil, err
	}
	nRows := m.NumRows()
	if o.Folds < 2 || o.Folds > nRows {
		return nil, fmt.Errorf("Folds=%d with %d rows: %w", o.Folds, nRows, ErrBadOptions)
	}

	full, err := Fit(m, y, &o)
	if err != nil {
		return nil, err
	}
	lambdas := full.Lambdas()

	folds := assignFolds(nRows, o.Folds, o.Seed)

	workers := o.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	devs := make([][]float64, o.Folds)
	errs := make([]error, o.Folds)
	for f := 0; f < o.Folds; f++ {
		wg.Add(1)
		go func(f int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			devs[f], errs[f] = evalFold(m, y, folds, f, lambdas, o)
		}(f)
	}
	wg.Wait()
	for f, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("fold %d: %w", f, e)
		}
	}

	// Commutative reduction: mean and standard error per lambda.
	k := float64(o.Folds)
	mean := make([]float64, len(lambdas))
	se := make([]float64, len(lambdas))
	for li := range lambdas {
		var sum float64
		for f := range devs {
			sum += devs[f][li]
		}
		mean[li] = sum / k

		var ss float64
		for f := range devs {
			d := devs[f][li] - mean[li]
			ss += d * d
		}
		se[li] = math.Sqrt(ss/(k-1)) / math.Sqrt(k)
	}

	// LambdaMin: lowest mean deviance; ties keep the larger lambda.
	minIdx := 0
	for li := 1; li < len(mean); li++ {
		if mean[li] < mean[minIdx] {
			minIdx = li
		}
	}
	// Lambda1SE: first (largest) lambda within one SE of the minimum.
	oneSEIdx := minIdx
	threshold := mean[minIdx] + se[minIdx]
	for li := 0; li <= minIdx; li++ {
		if mean[li] <= threshold {
			oneSEIdx = li

			break
		}
	}

	return &CVResult{
		Path:         full,
		MeanDeviance: mean,
		StdErr:       se,
		LambdaMin:    lambdas[minIdx],
		Lambda1SE:    lambdas[oneSEIdx],
	}, nil
}

// assignFolds deals shuffled row indices round-robin into folds.
// fold[i] is the fold of row i. Deterministic for a given seed.
func assignFolds(nRows, k int, seed int64) []int {
	order := make([]int, nRows)
	for i := range order {
		order[i] = i
	}
	rng := split.RNG(seed)
	for i := nRows - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	fold := make([]int, nRows)
	for pos, row := range order {
		fold[row] = pos % k
	}

	return fold
}

// evalFold refits the path with fold f's rows held out, then scores mean
// binomial deviance on those rows at every lambda.
func evalFold(m *sparse.Matrix, y []bool, folds []int, f int, lambdas []float64, o Options) ([]float64, error) {
	nRows := m.NumRows()
	include := make([]bool, nRows)
	nVal := 0
	for i := range include {
		include[i] = folds[i] != f
		if !include[i] {
			nVal++
		}
	}

	path, err := fitPath(m, y, include, lambdas, o)
	if err != nil {
		return nil, err
	}

	// Column lookup for the sparse per-point coefficient maps.
	colOf := make(map[string]int, m.NumTerms())
	for j, term := range m.Terms() {
		colOf[term] = j
	}

	devs := make([]float64, len(lambdas))
	etaVal := make([]float64, nRows)
	for li := range path.Points {
		pt := &path.Points[li]
		for i := range etaVal {
			etaVal[i] = pt.Intercept
		}
		for term, b := range pt.Coef {
			rows, vals := m.Column(colOf[term])
			for k, i := range rows {
				if !include[i] {
					etaVal[i] += b * vals[k]
				}
			}
		}

		var dev float64
		for i := 0; i < nRows; i++ {
			if include[i] {
				continue
			}
			p := clampProb(sigmoid(etaVal[i]))
			if y[i] {
				dev += -2 * math.Log(p)
			} else {
				dev += -2 * math.Log(1-p)
			}
		}
		devs[li] = dev / float64(nVal)
	}

	return devs, nil
}
