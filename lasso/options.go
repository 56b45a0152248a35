package lasso

import "fmt"

// DEFAULTS — single source of truth for zero-value behavior.
const (
	// DefaultNLambda is the length of the regularization path.
	DefaultNLambda = 100

	// DefaultLambdaMinRatio sets the smallest lambda as a fraction of
	// lambda_max.
	DefaultLambdaMinRatio = 1e-2

	// DefaultMaxIter caps outer IRLS sweeps per lambda; exceeding it is
	// ErrConvergence, never a silent partial result.
	DefaultMaxIter = 1000

	// DefaultTol is the convergence threshold on the largest coefficient
	// change within a sweep.
	DefaultTol = 1e-7

	// DefaultFolds is the cross-validation fold count.
	DefaultFolds = 10

	// probClamp bounds fitted probabilities away from 0 and 1 so weights
	// and deviances stay finite.
	probClamp = 1e-5
)

// Options configures path fitting and cross-validation.
//
// The zero value is NOT usable; start from DefaultOptions and override.
//
// Fields:
//   - NLambda        — number of penalties on the path (≥ 1).
//   - LambdaMinRatio — smallest/largest penalty ratio, in (0,1).
//   - MaxIter        — outer iteration budget per lambda (≥ 1).
//   - Tol            — convergence tolerance (> 0).
//   - Folds          — cross-validation fold count (≥ 2, ≤ rows).
//   - Seed           — fold-assignment seed; 0 means the fixed default
//     stream (see split.RNG).
//   - Workers        — parallel fold fitters; ≤ 0 means GOMAXPROCS.
//     Any value produces bit-identical results.
type Options struct {
	NLambda        int
	LambdaMinRatio float64
	MaxIter        int
	Tol            float64
	Folds          int
	Seed           int64
	Workers        int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NLambda:        DefaultNLambda,
		LambdaMinRatio: DefaultLambdaMinRatio,
		MaxIter:        DefaultMaxIter,
		Tol:            DefaultTol,
		Folds:          DefaultFolds,
	}
}

// validate normalizes nil to defaults and rejects nonsensical values.
func (o *Options) validate() (Options, error) {
	if o == nil {
		return DefaultOptions(), nil
	}
	opts := *o
	if opts.NLambda < 1 {
		return opts, fmt.Errorf("NLambda=%d: %w", opts.NLambda, ErrBadOptions)
	}
	if opts.LambdaMinRatio <= 0 || opts.LambdaMinRatio >= 1 {
		return opts, fmt.Errorf("LambdaMinRatio=%g: %w", opts.LambdaMinRatio, ErrBadOptions)
	}
	if opts.MaxIter < 1 {
		return opts, fmt.Errorf("MaxIter=%d: %w", opts.MaxIter, ErrBadOptions)
	}
	if opts.Tol <= 0 {
		return opts, fmt.Errorf("Tol=%g: %w", opts.Tol, ErrBadOptions)
	}

	return opts, nil
}
