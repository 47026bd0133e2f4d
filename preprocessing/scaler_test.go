package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/perceptron/pkg/errors"
)

func TestStandardScalerFitTransform(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
		4, 40,
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	r, c := scaled.Dims()
	if r != 4 || c != 2 {
		t.Fatalf("expected 4×2 output, got %d×%d", r, c)
	}

	for j := 0; j < c; j++ {
		var sum, sumSquares float64
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		meanJ := sum / float64(r)
		for i := 0; i < r; i++ {
			diff := scaled.At(i, j) - meanJ
			sumSquares += diff * diff
		}
		std := math.Sqrt(sumSquares / float64(r))

		if math.Abs(meanJ) > 1e-12 {
			t.Errorf("column %d mean not zero: %g", j, meanJ)
		}
		if math.Abs(std-1) > 1e-12 {
			t.Errorf("column %d std not one: %g", j, std)
		}
	}
}

func TestStandardScalerConstantFeature(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{7, 7, 7})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform failed: %v", err)
	}

	// A constant feature must not blow up to NaN or Inf.
	for i := 0; i < 3; i++ {
		v := scaled.At(i, 0)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("constant feature produced %g", v)
		}
		if v != 0 {
			t.Errorf("expected 0 for a centered constant feature, got %g", v)
		}
	}
}

func TestStandardScalerNotFitted(t *testing.T) {
	scaler := NewStandardScaler()
	X := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := scaler.Transform(X)
	if err == nil {
		t.Fatal("expected an error before Fit")
	}
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("expected a NotFittedError, got %v", err)
	}
}

func TestStandardScalerDimensionMismatch(t *testing.T) {
	scaler := NewStandardScaler()
	if err := scaler.Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4})); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	_, err := scaler.Transform(mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	if err == nil {
		t.Fatal("expected an error for mismatched width")
	}
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("expected a DimensionError, got %v", err)
	}
}
