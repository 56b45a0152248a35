package lasso

import (
	"errors"
	"math"
)

var (
	// ErrDegenerateLabels indicates a constant label vector — all true or
	// all false — on the full data or inside a cross-validation fold.
	ErrDegenerateLabels = errors.New("lasso: degenerate labels, need both positive and negative examples")

	// ErrConvergence indicates the coordinate-descent optimizer exhausted
	// its iteration budget at some lambda on the path.
	ErrConvergence = errors.New("lasso: optimizer failed to converge within iteration budget")

	// ErrDimensionMismatch indicates the label vector length does not
	// match the matrix row count.
	ErrDimensionMismatch = errors.New("lasso: label vector length does not match matrix rows")

	// ErrBadOptions indicates an out-of-range option value (see Options).
	ErrBadOptions = errors.New("lasso: invalid options")
)

// Point is the fitted model at one penalty strength.
type Point struct {
	// Lambda is the L1 penalty this model was fitted at.
	Lambda float64

	// Intercept is the unpenalized bias term. It is tracked separately
	// and never appears in Coef.
	Intercept float64

	// Coef maps term → coefficient, non-zero entries only. A positive
	// coefficient raises the predicted probability of the target group.
	Coef map[string]float64
}

// L1 returns Σ|coef|, the L1 norm of the point's coefficients
// (intercept excluded).
func (p *Point) L1() float64 {
	var sum float64
	for _, b := range p.Coef {
		sum += math.Abs(b)
	}

	return sum
}

// Path is the regularization path: one Point per lambda, strictly
// decreasing in lambda. Callers can extract coefficients at any fitted
// lambda without refitting.
type Path struct {
	// Points is ordered by decreasing Lambda.
	Points []Point
}

// Lambdas returns the penalty sequence in path order (decreasing).
func (p *Path) Lambdas() []float64 {
	ls := make([]float64, len(p.Points))
	for i := range p.Points {
		ls[i] = p.Points[i].Lambda
	}

	return ls
}

// At returns the path point whose lambda is closest to the target
// (exact match wins; equidistant ties pick the larger lambda).
// Returns nil on an empty path.
func (p *Path) At(lambda float64) *Point {
	if len(p.Points) == 0 {
		return nil
	}
	best := 0
	bestDist := math.Abs(p.Points[0].Lambda - lambda)
	for i := 1; i < len(p.Points); i++ {
		d := math.Abs(p.Points[i].Lambda - lambda)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return &p.Points[best]
}

// CVResult bundles the full-data path with the cross-validation curve.
// Slices are indexed in path order (decreasing lambda).
type CVResult struct {
	// Path is fitted on all rows; extract coefficients from here.
	Path *Path

	// MeanDeviance[i] is the mean held-out binomial deviance at
	// Path.Points[i].Lambda, averaged over folds.
	MeanDeviance []float64

	// StdErr[i] is the standard error of that mean across folds.
	StdErr []float64

	// LambdaMin minimizes MeanDeviance.
	LambdaMin float64

	// Lambda1SE is the largest lambda with
	// MeanDeviance ≤ min(MeanDeviance) + StdErr at the minimum.
	// Always ≥ LambdaMin.
	Lambda1SE float64
}
