// SPDX-License-Identifier: MIT

// Package regression provides thin linear-regression helpers built entirely
// on the public mat operation surface: squared-error cost, batch gradient
// descent and the logistic sigmoid.
package regression

import (
	"math"

	"github.com/katalvlaran/nummat/mat"
)

const (
	opComputeCost     = "ComputeCost"
	opGradientDescent = "GradientDescent"
	opSigmoid         = "Sigmoid"
)

// ComputeCost returns the mean squared error cost
// J(θ) = Σ(X·θ − y)² / (2m) for m training rows.
//
// Inputs:
//   - x: m×n design matrix; theta: n×1 parameters; y: m×1 targets.
//
// Errors: any shape violation surfaced by the underlying mat operations.
// Complexity: O(m*n).
func ComputeCost(x, y, theta mat.Matrix) (float64, error) {
	pred, err := mat.Mul(x, theta)
	if err != nil {
		return 0, regErrorf(opComputeCost, err)
	}
	residual, err := mat.Sub(pred, y)
	if err != nil {
		return 0, regErrorf(opComputeCost, err)
	}
	squared, err := mat.ElementMul(residual, residual)
	if err != nil {
		return 0, regErrorf(opComputeCost, err)
	}
	total, err := mat.Sum(squared, mat.DimAuto)
	if err != nil {
		return 0, regErrorf(opComputeCost, err)
	}
	s, err := total.At(0, 0)
	if err != nil {
		return 0, regErrorf(opComputeCost, err)
	}

	return s / (2 * float64(x.Rows())), nil
}

// GradientDescent runs iters steps of batch gradient descent,
// θ ← θ − (α/m)·Xᵗ(Xθ − y), and returns the final parameters together with
// the cost history (one entry per completed iteration).
//
// Inputs:
//   - x: m×n design matrix; y: m×1 targets; theta: n×1 starting parameters
//     (not mutated); alpha: learning rate; iters: iteration count.
//
// Errors: any shape violation surfaced by the underlying mat operations.
// Determinism: identical inputs produce identical trajectories.
// Complexity: O(iters * m * n).
func GradientDescent(x, y, theta mat.Matrix, alpha float64, iters int) (*mat.Dense, []float64, error) {
	cur, err := mat.CopyOf(theta)
	if err != nil {
		return nil, nil, regErrorf(opGradientDescent, err)
	}

	rate := alpha / float64(x.Rows())
	history := make([]float64, 0, iters)
	for it := 0; it < iters; it++ {
		pred, err := mat.Mul(x, cur)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}
		residual, err := mat.Sub(pred, y)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}
		grad, err := mat.TransposeMul(x, residual)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}
		step, err := mat.Scale(grad, rate)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}
		cur, err = mat.Sub(cur, step)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}

		cost, err := ComputeCost(x, y, cur)
		if err != nil {
			return nil, nil, regErrorf(opGradientDescent, err)
		}
		history = append(history, cost)
	}

	return cur, history, nil
}

// Sigmoid maps the logistic function 1/(1+e^(−x)) over every element.
// Errors: mat.ErrNilMatrix. Complexity: O(r*c).
func Sigmoid(m mat.Matrix) (*mat.Dense, error) {
	out, err := mat.Apply(m, func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
	if err != nil {
		return nil, regErrorf(opSigmoid, err)
	}

	return out, nil
}
