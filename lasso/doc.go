// Package lasso fits L1-regularized (LASSO) logistic regression over a
// sparse document-term matrix and selects a penalty strength by k-fold
// cross-validation.
//
// 🚀 Algorithm (glmnet-style):
//
//	Fit walks a geometric sequence of NLambda penalties from lambda_max
//	(the smallest penalty that zeroes every coefficient, from the KKT
//	condition) down to lambda_max × LambdaMinRatio. At each step it
//	minimizes
//
//	    (1/n) Σ -loglik(β0, β) + λ‖β‖₁
//
//	by iteratively reweighted least squares with coordinate descent and
//	soft-thresholding on the inner quadratic, warm-starting each lambda
//	from the previous solution. The intercept is never penalized and is
//	excluded from ranked outputs.
//
// ✨ Cross-validation:
//
//	CrossValidate fixes the lambda sequence on the full data, assigns
//	rows to k folds by a seeded shuffle, refits the path per fold and
//	scores mean binomial deviance on the held-out rows. Fold results are
//	reduced by plain averaging — a commutative reduction — so fitting
//	folds concurrently (Workers) cannot change any output bit.
//
//	LambdaMin  — penalty with the lowest mean cross-validated deviance.
//	Lambda1SE  — the LARGEST penalty whose mean deviance stays within
//	             one standard error of that minimum; the conventional
//	             "simplest model that is statistically as good".
//
// Coefficients live on the raw count scale (columns are not
// standardized), so an estimate reads as "log-odds change per extra
// occurrence of the lemma".
//
// Errors:
//   - ErrDegenerateLabels — the label vector (or a fold's training
//     labels) is constant; nothing to classify.
//   - ErrConvergence      — an optimizer run exhausted MaxIter sweeps.
//   - ErrDimensionMismatch, ErrBadOptions — malformed inputs.
package lasso
