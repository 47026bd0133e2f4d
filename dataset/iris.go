package dataset

import (
	_ "embed"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// The classic UCI Iris dataset (Fisher, 1936): 150 records of four
// measurements plus the species name. Rows 0-49 are Iris-setosa, rows
// 50-99 Iris-versicolor, rows 100-149 Iris-virginica.
//
//go:embed iris.data
var irisData string

// Iris feature column indices in iris.data.
const (
	IrisSepalLength = 0
	IrisSepalWidth  = 1
	IrisPetalLength = 2
	IrisPetalWidth  = 3

	irisLabelCol = 4
)

// LoadIris returns the two-class, two-feature Iris subset used throughout
// the perceptron literature: the first 100 records (setosa and versicolor)
// with sepal length and petal length as features, and species mapped to
// setosa → -1, versicolor → +1. The two classes are linearly separable in
// this projection.
func LoadIris() (*mat.Dense, *mat.VecDense, error) {
	return ReadCSV(strings.NewReader(irisData), CSVOptions{
		FeatureCols: []int{IrisSepalLength, IrisPetalLength},
		LabelCol:    irisLabelCol,
		Labels: map[string]float64{
			"Iris-setosa":     -1,
			"Iris-versicolor": 1,
		},
		MaxRows: 100,
	})
}
