// Package metrics provides evaluation metrics for classification models.
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/perceptron/pkg/errors"
)

// Accuracy returns the fraction of predictions in yPred that match yTrue.
// Both arguments are n×1 column matrices.
func Accuracy(yTrue, yPred mat.Matrix) (float64, error) {
	n, err := checkColumnPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ZeroOneLoss returns the number of predictions in yPred that differ from
// yTrue. Both arguments are n×1 column matrices.
func ZeroOneLoss(yTrue, yPred mat.Matrix) (int, error) {
	n, err := checkColumnPair("ZeroOneLoss", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	mistakes := 0
	for i := 0; i < n; i++ {
		if yTrue.At(i, 0) != yPred.At(i, 0) {
			mistakes++
		}
	}
	return mistakes, nil
}

func checkColumnPair(op string, yTrue, yPred mat.Matrix) (int, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 {
		return 0, errors.NewValueError(op, "empty input")
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError(op, "inputs must be column vectors (n×1 matrices)")
	}
	if rPred != rTrue {
		return 0, errors.NewDimensionError(op, rTrue, rPred, 0)
	}
	return rTrue, nil
}
