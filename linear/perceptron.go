// Package linear implements linear classification models.
package linear

import (
	"fmt"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gomlab/perceptron/core/model"
	"github.com/gomlab/perceptron/core/parallel"
	"github.com/gomlab/perceptron/metrics"
	"github.com/gomlab/perceptron/pkg/errors"
)

// Row count above which batch inference fans out across CPU cores. Training
// is never parallelized: each weight update depends on the previous one.
const parallelThreshold = 1000

// Perceptron is Rosenblatt's single-layer binary classifier, trained online
// with the classic mistake-driven update rule
//
//	update = eta * (yTrue - yPred)
//	bias  += update
//	w[j]  += update * x[j]
//
// Labels must be encoded as {-1, +1}. The decision function is the unit
// step over the net input, with net input exactly zero resolving to +1.
type Perceptron struct {
	model.BaseEstimator

	// Hyperparameters.
	eta    float64 // learning rate, expected in (0, 1]
	epochs int     // number of passes over the training data
	seed   uint64  // seed of the weight-initialization RNG
	scale  float64 // standard deviation of the initial weights

	// Learned state. w[0] is the bias, w[1:] the per-feature weights.
	w         []float64
	misclass  []int
	nFeatures int
}

// NewPerceptron creates a Perceptron with the given options. Defaults:
// eta 0.01, 100 epochs, seed 1, scale 0.01.
func NewPerceptron(opts ...Option) *Perceptron {
	p := &Perceptron{
		eta:    0.01,
		epochs: 100,
		seed:   1,
		scale:  0.01,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fit trains the classifier on X (n_samples × n_features) with labels y
// (n_samples × 1, values in {-1, +1}).
//
// Weights are drawn from a Normal(0, scale) distribution seeded with the
// configured seed, so two Fit calls with identical inputs produce
// bit-identical weights. Samples are visited in the given order; this is
// online learning, no shuffling.
//
// Fit is atomic: all input validation happens before any prior state is
// touched, and the learned state is swapped in only on success. Refitting
// fully reinitializes the model. If the final epoch still contains
// misclassifications a ConvergenceWarning is raised through errors.Warn.
func (p *Perceptron) Fit(X, y mat.Matrix) error {
	nSamples, nFeatures := X.Dims()
	if nSamples == 0 || nFeatures == 0 {
		return errors.NewModelError("Perceptron.Fit", "empty data", errors.ErrEmptyData)
	}

	yRows, yCols := y.Dims()
	if yRows != nSamples {
		return errors.NewDimensionError("Perceptron.Fit", nSamples, yRows, 0)
	}
	if yCols != 1 {
		return errors.NewValueError("Perceptron.Fit", "y must be a column vector")
	}
	for i := 0; i < nSamples; i++ {
		if v := y.At(i, 0); v != -1 && v != 1 {
			return errors.NewValueError("Perceptron.Fit",
				fmt.Sprintf("labels must be -1 or +1, got %g at row %d", v, i))
		}
	}
	if p.epochs < 1 {
		return errors.NewValidationError("epochs", "must be a positive integer", p.epochs)
	}
	if p.scale <= 0 {
		return errors.NewValidationError("scale", "must be positive", p.scale)
	}

	// Small non-zero initial weights break symmetry; the fixed seed keeps
	// training reproducible.
	normal := distuv.Normal{Mu: 0, Sigma: p.scale, Src: xrand.NewSource(p.seed)}
	w := make([]float64, 1+nFeatures)
	for i := range w {
		w[i] = normal.Rand()
	}

	misclass := make([]int, 0, p.epochs)
	xi := make([]float64, nFeatures)

	for epoch := 0; epoch < p.epochs; epoch++ {
		mistakes := 0
		for i := 0; i < nSamples; i++ {
			mat.Row(xi, i, X)
			update := p.eta * (y.At(i, 0) - step(affine(w, xi)))
			if update != 0 {
				w[0] += update
				for j, v := range xi {
					w[j+1] += update * v
				}
				mistakes++
			}
		}
		misclass = append(misclass, mistakes)
	}

	p.w = w
	p.misclass = misclass
	p.nFeatures = nFeatures
	p.SetFitted()

	if misclass[len(misclass)-1] > 0 {
		errors.Warn(errors.NewConvergenceWarning("Perceptron", p.epochs,
			"misclassifications remain after the final epoch"))
	}
	return nil
}

// NetInput returns the affine score bias + w·x for every row of X. The
// scores are a pure function of the learned weights; callers rendering a
// decision boundary can use them as the raw hyperplane distances.
func (p *Perceptron) NetInput(X mat.Matrix) (*mat.VecDense, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Perceptron", "NetInput")
	}
	r, c := X.Dims()
	if c != p.nFeatures {
		return nil, errors.NewDimensionError("Perceptron.NetInput", p.nFeatures, c, 1)
	}
	return p.scores(X, r, c), nil
}

// NetInputSample returns the affine score of a single sample.
func (p *Perceptron) NetInputSample(x []float64) (float64, error) {
	if !p.IsFitted() {
		return 0, errors.NewNotFittedError("Perceptron", "NetInputSample")
	}
	if len(x) != p.nFeatures {
		return 0, errors.NewDimensionError("Perceptron.NetInputSample", p.nFeatures, len(x), 1)
	}
	return affine(p.w, x), nil
}

// Predict classifies every row of X, returning an n×1 matrix of {-1, +1}.
// Safe for concurrent use once the model is fitted: it only reads weights.
func (p *Perceptron) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Perceptron", "Predict")
	}
	r, c := X.Dims()
	if c != p.nFeatures {
		return nil, errors.NewDimensionError("Perceptron.Predict", p.nFeatures, c, 1)
	}

	scores := p.scores(X, r, c)
	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		predictions.Set(i, 0, step(scores.AtVec(i)))
	}
	return predictions, nil
}

// Score returns the mean accuracy of Predict(X) against y.
func (p *Perceptron) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.Accuracy(y, predictions)
}

// scores computes the net input per row. Rows are independent, so large
// batches fan out across cores; dims are assumed validated by the caller.
func (p *Perceptron) scores(X mat.Matrix, r, c int) *mat.VecDense {
	out := mat.NewVecDense(r, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		xi := make([]float64, c)
		for i := start; i < end; i++ {
			mat.Row(xi, i, X)
			out.SetVec(i, affine(p.w, xi))
		}
	})
	return out
}

// Weights returns a copy of the full weight vector. Index 0 is the bias,
// indices 1..n are the per-feature weights. Returns nil before Fit.
func (p *Perceptron) Weights() []float64 {
	if p.w == nil {
		return nil
	}
	w := make([]float64, len(p.w))
	copy(w, p.w)
	return w
}

// Coef returns a copy of the per-feature weights, excluding the bias.
func (p *Perceptron) Coef() []float64 {
	if p.w == nil {
		return nil
	}
	coef := make([]float64, len(p.w)-1)
	copy(coef, p.w[1:])
	return coef
}

// Intercept returns the learned bias term, or 0 before Fit.
func (p *Perceptron) Intercept() float64 {
	if !p.IsFitted() {
		return 0
	}
	return p.w[0]
}

// Misclassifications returns a copy of the per-epoch misclassification
// counts recorded by the last Fit, one entry per epoch in order. A zero
// entry means the epoch produced no weight update, so all later epochs are
// zero as well. Returns nil before Fit.
func (p *Perceptron) Misclassifications() []int {
	if p.misclass == nil {
		return nil
	}
	counts := make([]int, len(p.misclass))
	copy(counts, p.misclass)
	return counts
}

// NFeatures returns the feature width seen during Fit, or 0 before Fit.
func (p *Perceptron) NFeatures() int {
	return p.nFeatures
}

// Eta returns the configured learning rate.
func (p *Perceptron) Eta() float64 {
	return p.eta
}

// Epochs returns the configured epoch count.
func (p *Perceptron) Epochs() int {
	return p.epochs
}

// affine computes w[0] + dot(w[1:], x).
func affine(w, x []float64) float64 {
	s := w[0]
	for j, v := range x {
		s += w[j+1] * v
	}
	return s
}

// step is the unit step decision function. The threshold is inclusive: a
// net input of exactly zero resolves to the positive class.
func step(z float64) float64 {
	if z >= 0 {
		return 1
	}
	return -1
}
