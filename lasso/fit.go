package lasso

import (
	"fmt"
	"math"

	"github.com/andrewheiss/tidytext-pos-john/sparse"
)

// Fit computes the LASSO logistic regularization path for predicting y
// over the rows of m.
//
// y must align with m.Rows() (true = target group). The lambda sequence
// is geometric, NLambda values from lambda_max down to
// lambda_max × LambdaMinRatio; the first point is the exact null model
// (all-zero coefficients, intercept at logit(mean y)) guaranteed by the
// KKT condition at lambda_max. Each later lambda warm-starts from its
// predecessor.
//
// Coefficients are on the raw count scale; columns are not standardized.
//
// Errors: ErrDimensionMismatch, ErrDegenerateLabels, ErrBadOptions,
// ErrConvergence (wrapped with the failing lambda).
func Fit(m *sparse.Matrix, y []bool, opts *Options) (*Path, error) {
	o, err := opts.validate()
	if err != nil {
		return nil, err
	}
	if len(y) != m.NumRows() {
		return nil, ErrDimensionMismatch
	}

	include := make([]bool, m.NumRows())
	for i := range include {
		include[i] = true
	}

	return fitPath(m, y, include, nil, o)
}

// fitPath is the shared engine behind Fit and per-fold refits.
//
// include masks the rows participating in the fit (validation rows of a
// fold are excluded but keep their index so the matrix is not rebuilt).
// When lambdas is nil the sequence is derived from the included data and
// the first point shortcuts to the null model; a caller-fixed sequence
// (cross-validation) is optimized at every point.
func fitPath(m *sparse.Matrix, y []bool, include []bool, lambdas []float64, o Options) (*Path, error) {
	n := 0
	pos := 0
	for i, in := range include {
		if !in {
			continue
		}
		n++
		if y[i] {
			pos++
		}
	}
	if pos == 0 || pos == n {
		return nil, ErrDegenerateLabels
	}

	yMean := float64(pos) / float64(n)
	nullIntercept := math.Log(yMean / (1 - yMean))

	ownSequence := lambdas == nil
	if ownSequence {
		lambdas = lambdaSequence(m, y, include, n, yMean, o)
	}

	nTerms := m.NumTerms()
	beta := make([]float64, nTerms)
	intercept := nullIntercept
	eta := make([]float64, m.NumRows())
	for i := range eta {
		eta[i] = intercept
	}

	path := &Path{Points: make([]Point, 0, len(lambdas))}
	for li, lambda := range lambdas {
		if ownSequence && li == 0 {
			// KKT: at lambda_max every coefficient is exactly zero, so the
			// first point is the null model with no optimization.
			path.Points = append(path.Points, snapshot(lambda, intercept, beta, m))

			continue
		}
		if err := descend(m, y, include, n, lambda, beta, &intercept, eta, o); err != nil {
			return nil, fmt.Errorf("lambda[%d]=%g: %w", li, lambda, err)
		}
		path.Points = append(path.Points, snapshot(lambda, intercept, beta, m))
	}

	return path, nil
}

// lambdaSequence derives the geometric penalty grid. lambda_max is the
// smallest penalty that zeroes all coefficients:
// max_j |(1/n) Σ x_ij (y_i − ȳ)| over included rows.
func lambdaSequence(m *sparse.Matrix, y []bool, include []bool, n int, yMean float64, o Options) []float64 {
	var lambdaMax float64
	for j := 0; j < m.NumTerms(); j++ {
		rows, vals := m.Column(j)
		var g float64
		for k, i := range rows {
			if !include[i] {
				continue
			}
			yi := 0.0
			if y[i] {
				yi = 1.0
			}
			g += vals[k] * (yi - yMean)
		}
		if a := math.Abs(g) / float64(n); a > lambdaMax {
			lambdaMax = a
		}
	}
	if lambdaMax <= 0 {
		// No column correlates with the labels at all; any positive
		// penalty keeps the null model, so the grid scale is arbitrary.
		lambdaMax = 1
	}

	ls := make([]float64, o.NLambda)
	if o.NLambda == 1 {
		ls[0] = lambdaMax

		return ls
	}
	logMax := math.Log(lambdaMax)
	logStep := math.Log(o.LambdaMinRatio) / float64(o.NLambda-1)
	for t := range ls {
		ls[t] = math.Exp(logMax + logStep*float64(t))
	}

	return ls
}

// descend minimizes the penalized deviance at one lambda, mutating beta,
// intercept and eta in place (warm start for the next lambda).
//
// Each outer sweep rebuilds the IRLS quadratic (probabilities p and
// weights w = p(1−p) from the current eta), then performs one coordinate
// cycle with soft-thresholding: intercept first (unpenalized), then
// every column. Converged when the largest single-coefficient change in
// a sweep drops below Tol; exceeding MaxIter sweeps is ErrConvergence.
func descend(m *sparse.Matrix, y []bool, include []bool, n int, lambda float64, beta []float64, intercept *float64, eta []float64, o Options) error {
	nRows := m.NumRows()
	nTerms := m.NumTerms()
	w := make([]float64, nRows)
	u := make([]float64, nRows) // working residual w·(z − eta), equals y − p at sweep start
	fn := float64(n)

	for iter := 0; iter < o.MaxIter; iter++ {
		// Rebuild the quadratic approximation at the current eta.
		var sumW float64
		for i := 0; i < nRows; i++ {
			if !include[i] {
				continue
			}
			p := clampProb(sigmoid(eta[i]))
			w[i] = p * (1 - p)
			yi := 0.0
			if y[i] {
				yi = 1.0
			}
			u[i] = yi - p
			sumW += w[i]
		}

		maxDelta := 0.0

		// Intercept (unpenalized).
		var num float64
		for i := 0; i < nRows; i++ {
			if include[i] {
				num += u[i]
			}
		}
		if d0 := num / sumW; d0 != 0 {
			*intercept += d0
			for i := 0; i < nRows; i++ {
				if include[i] {
					eta[i] += d0
					u[i] -= w[i] * d0
				}
			}
			maxDelta = math.Max(maxDelta, math.Abs(d0))
		}

		// One cycle over the columns.
		for j := 0; j < nTerms; j++ {
			rows, vals := m.Column(j)
			var grad, v float64
			for k, i := range rows {
				if !include[i] {
					continue
				}
				grad += vals[k] * u[i]
				v += w[i] * vals[k] * vals[k]
			}
			v /= fn
			if v == 0 {
				continue // column absent from the included rows
			}
			bNew := softThreshold(grad/fn+v*beta[j], lambda) / v
			if d := bNew - beta[j]; d != 0 {
				beta[j] = bNew
				for k, i := range rows {
					if include[i] {
						eta[i] += vals[k] * d
						u[i] -= w[i] * vals[k] * d
					}
				}
				maxDelta = math.Max(maxDelta, math.Abs(d))
			}
		}

		if maxDelta < o.Tol {
			return nil
		}
	}

	return ErrConvergence
}

// snapshot copies the current solution into an immutable path point,
// keeping only non-zero coefficients keyed by term.
func snapshot(lambda, intercept float64, beta []float64, m *sparse.Matrix) Point {
	coef := make(map[string]float64)
	terms := m.Terms()
	for j, b := range beta {
		if b != 0 {
			coef[terms[j]] = b
		}
	}

	return Point{Lambda: lambda, Intercept: intercept, Coef: coef}
}

// sigmoid is the standard logistic function.
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// clampProb bounds p inside [probClamp, 1−probClamp].
func clampProb(p float64) float64 {
	if p < probClamp {
		return probClamp
	}
	if p > 1-probClamp {
		return 1 - probClamp
	}

	return p
}

// softThreshold is the LASSO shrinkage operator S(x, t).
func softThreshold(x, t float64) float64 {
	switch {
	case x > t:
		return x - t
	case x < -t:
		return x + t
	default:
		return 0
	}
}
