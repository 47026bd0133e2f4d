// Package preprocessing provides data preparation utilities for the
// classifiers in this library.
package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/perceptron/core/model"
	"github.com/gomlab/perceptron/pkg/errors"
)

// StandardScaler standardizes features to zero mean and unit variance.
// Centering and scaling are computed per feature on the data seen in Fit.
type StandardScaler struct {
	model.BaseEstimator

	// Mean holds the per-feature mean computed in Fit.
	Mean []float64

	// Scale holds the per-feature standard deviation computed in Fit.
	Scale []float64

	// NFeatures is the feature width seen in Fit.
	NFeatures int

	// WithMean controls whether Transform subtracts the mean.
	WithMean bool

	// WithStd controls whether Transform divides by the standard deviation.
	WithStd bool
}

// NewStandardScaler creates a StandardScaler that both centers and scales.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{WithMean: true, WithStd: true}
}

// Fit computes the per-feature mean and standard deviation of X.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	mean := make([]float64, c)
	scale := make([]float64, c)

	for j := 0; j < c; j++ {
		if s.WithMean {
			sum := 0.0
			for i := 0; i < r; i++ {
				sum += X.At(i, j)
			}
			mean[j] = sum / float64(r)
		}

		if s.WithStd {
			sumSquares := 0.0
			for i := 0; i < r; i++ {
				diff := X.At(i, j) - mean[j]
				sumSquares += diff * diff
			}
			scale[j] = math.Sqrt(sumSquares / float64(r))
			// A near-constant feature would divide by ~0; leave it unscaled.
			if math.Abs(scale[j]) < 1e-8 {
				scale[j] = 1.0
			}
		} else {
			scale[j] = 1.0
		}
	}

	s.Mean = mean
	s.Scale = scale
	s.NFeatures = c
	s.SetFitted()
	return nil
}

// Transform standardizes X with the statistics computed in Fit.
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-s.Mean[j])/s.Scale[j])
		}
	}
	return result, nil
}

// FitTransform fits the scaler on X and returns the standardized data.
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}
