// Package model provides the core interfaces and base types shared by the
// estimators in this library.
package model

import "gonum.org/v1/gonum/mat"

// Fitter is the interface of models that learn from training data.
type Fitter interface {
	// Fit trains the model on X with targets y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface of models that predict targets for input data.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator combines fitting and prediction.
type Estimator interface {
	Fitter
	Predictor
}

// LinearModel is the interface of models parameterized by a separating
// hyperplane.
type LinearModel interface {
	// Coef returns the learned per-feature weights.
	Coef() []float64
	// Intercept returns the learned bias term.
	Intercept() float64
}

// Scorer is the interface of models that evaluate their own predictions.
type Scorer interface {
	// Score returns a model-appropriate goodness measure; for classifiers
	// this is the mean accuracy on the given data.
	Score(X, y mat.Matrix) (float64, error)
}
