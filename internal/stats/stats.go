// Package stats implements the study's descriptive statistics: Pearson
// correlation and least-squares fits with one or two predictors. Degenerate
// inputs (too few points, zero variance, singular systems) yield explicit
// undefined results; no function here ever returns NaN or Inf.
package stats

import "math"

// singularEps bounds the determinant below which the two-predictor normal
// equations are treated as singular.
const singularEps = 1e-10

// Correlation computes the population Pearson correlation of two aligned
// series. It requires at least 2 pairs and positive variance in both
// series; otherwise ok is false. A false ok is distinct from r == 0 and
// must stay so — the display layer decides how to render undefined cells.
func Correlation(xs, ys []float64) (r float64, ok bool) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return 0, false
	}
	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var num, ssX, ssY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		num += dx * dy
		ssX += dx * dx
		ssY += dy * dy
	}
	denom := math.Sqrt(ssX * ssY)
	if denom == 0 {
		return 0, false
	}
	r = num / denom
	// Guard against floating-point drift past ±1.
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r, true
}

// LinearFit is an ordinary least-squares line with its goodness of fit.
type LinearFit struct {
	Slope     float64
	Intercept float64
	R2        float64
	N         int
}

// Linear fits y = slope*x + intercept over aligned series. At least 2
// points and non-zero variance in x are required; otherwise ok is false.
// SStot == 0 is reported as R² = 0.
func Linear(xs, ys []float64) (fit LinearFit, ok bool) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n < 2 {
		return LinearFit{}, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	fn := float64(n)
	denom := fn*sumXX - sumX*sumX
	if denom == 0 {
		// All x identical: the line is vertical, not a function of x.
		return LinearFit{}, false
	}
	slope := (fn*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / fn

	yMean := sumY / fn
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		pred := slope*xs[i] + intercept
		ssRes += (ys[i] - pred) * (ys[i] - pred)
		ssTot += (ys[i] - yMean) * (ys[i] - yMean)
	}
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}
	return LinearFit{Slope: slope, Intercept: intercept, R2: r2, N: n}, true
}

// PlaneFit is a two-predictor least-squares plane z = CoeffX*x + CoeffY*y +
// Intercept.
type PlaneFit struct {
	CoeffX    float64
	CoeffY    float64
	Intercept float64
	R2        float64
	N         int
}

// Plane fits the two-predictor normal equations via centered sums of
// squares and Cramer's rule. At least 3 points are required, and the
// predictor covariance matrix must be non-singular (|det| >= 1e-10);
// otherwise ok is false.
func Plane(xs, ys, zs []float64) (fit PlaneFit, ok bool) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if len(zs) < n {
		n = len(zs)
	}
	if n < 3 {
		return PlaneFit{}, false
	}
	var meanX, meanY, meanZ float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
		meanZ += zs[i]
	}
	fn := float64(n)
	meanX /= fn
	meanY /= fn
	meanZ /= fn

	var sxx, syy, sxy, sxz, syz float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		dz := zs[i] - meanZ
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
		sxz += dx * dz
		syz += dy * dz
	}
	det := sxx*syy - sxy*sxy
	if math.Abs(det) < singularEps {
		return PlaneFit{}, false
	}
	cx := (sxz*syy - syz*sxy) / det
	cy := (sxx*syz - sxz*sxy) / det
	intercept := meanZ - cx*meanX - cy*meanY

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		pred := cx*xs[i] + cy*ys[i] + intercept
		ssRes += (zs[i] - pred) * (zs[i] - pred)
		ssTot += (zs[i] - meanZ) * (zs[i] - meanZ)
	}
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}
	return PlaneFit{CoeffX: cx, CoeffY: cy, Intercept: intercept, R2: r2, N: n}, true
}
